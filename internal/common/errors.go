// Package common defines shared constants and sentinel errors used across
// docledger components. Callers should use errors.Is to match these values;
// services wrap them with fmt.Errorf("...: %w") to add context.
package common

import "errors"

var (
	// ErrorNotFound is returned when an asset, record or user does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorForbidden is returned when the requester lacks access to an
	// existing asset.
	ErrorForbidden = errors.New("forbidden")

	// ErrorUnauthorized is returned for role-gated operations and failed
	// credentials.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorConflict is returned on duplicate unique keys.
	ErrorConflict = errors.New("conflict")

	// ErrorInternal marks invariant violations and unexpected failures.
	ErrorInternal = errors.New("internal error")

	ErrInvalidToken = errors.New("invalid token")
)

var kinds = []error{
	ErrorNotFound,
	ErrorForbidden,
	ErrorUnauthorized,
	ErrorConflict,
	ErrorInternal,
}

// KindOf returns the sentinel that err wraps. Errors that wrap none of the
// sentinels are reported as ErrorInternal. A nil error has no kind.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidToken) {
		return ErrorUnauthorized
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrorInternal
}
