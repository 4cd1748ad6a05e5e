package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidParent = errors.New("invalid parent")
	ErrHasChildren   = errors.New("has children")
	ErrInUse         = errors.New("still in use")
	ErrProtected     = errors.New("protected")
	ErrOutOfScope    = errors.New("department outside data scope")
)

// ValidationError carries per-field messages. It matches ErrValidation.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f, msg := range e.Details {
		fields = append(fields, f+": "+msg)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(fields, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// fieldErrors collects validation failures; the first message per field wins.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) check(ok bool, field, msg string) {
	if !ok {
		f.add(field, msg)
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Details: f}
}
