package jwtx

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims this service reads. The external login
// service issues the tokens and puts the numeric user id in "sub".
type Claims struct {
	jwt.RegisteredClaims

	// Username is informational; lookups use the subject.
	Username string `json:"username,omitempty"`

	// Scopes are carried through but not enforced. Permissions come from the
	// user's roles.
	Scopes []string `json:"scopes,omitempty"`
}

// UserID parses the subject as a positive user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidClaim, c.Subject)
	}
	return id, nil
}

// Check validates iss, aud, exp and nbf against opts at now. An empty
// Issuer or Audience in opts is not enforced. exp is required.
func (c *Claims) Check(now time.Time, opts VerifyOptions) error {
	if opts.Issuer != "" && c.Issuer != opts.Issuer {
		return fmt.Errorf("%w: got %q", ErrIssuer, c.Issuer)
	}
	if len(opts.Audience) > 0 && !slices.ContainsFunc(opts.Audience, func(want string) bool {
		return slices.Contains(c.Audience, want)
	}) {
		return ErrAudience
	}

	if c.ExpiresAt == nil {
		return fmt.Errorf("%w: missing exp", ErrInvalidClaim)
	}
	if now.After(c.ExpiresAt.Add(opts.Leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-opts.Leeway)) {
		return ErrNotYetValid
	}
	return nil
}
