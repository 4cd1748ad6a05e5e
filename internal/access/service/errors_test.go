package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	f := fieldErrors{}
	require.NoError(t, f.err())

	f.check(false, "name", "required")
	f.check(false, "name", "too long")
	f.check(true, "code", "required")

	err := f.err()
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, map[string]string{"name": "required"}, verr.Details)
	require.Equal(t, "validation failed: name: required", err.Error())
}
