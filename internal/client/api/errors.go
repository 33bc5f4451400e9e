package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced a response. Callers surface a retry-worthy message.
	ErrUnavailable = errors.New("server unavailable")

	// ErrRejected marks responses where the server answered but refused
	// the operation.
	ErrRejected = errors.New("request rejected")

	// ErrInvalidPassword is the distinguished password-change failure
	// (400 with detail=invalid_password).
	ErrInvalidPassword = errors.New("current password incorrect")
)

func rejected(r *Response) error {
	detail := r.Detail
	if detail == "" {
		detail = "no detail"
	}
	return fmt.Errorf("%w: %s (status %d)", ErrRejected, detail, r.Status)
}
