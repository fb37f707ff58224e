package domain

import (
	"errors"
	"fmt"
)

var (
	// Caller input errors, never retried.
	ErrEmptyInput    = errors.New("empty input text")
	ErrInvalidLength = errors.New("invalid length setting")
	ErrUnknownMode   = errors.New("unknown engine mode")
	ErrInvalidInput  = errors.New("invalid input")

	// Online engine configuration and transport failures.
	ErrMissingCredential = errors.New("missing api credential")
	ErrRemoteService     = errors.New("remote service failure")

	ErrDocumentNotFound = errors.New("document not found")
	ErrSummaryNotFound  = errors.New("summary not found")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
