package client

import (
	"fmt"

	"github.com/IrtizaAhmed131198/dating-app/internal/common"
)

// APIError is the uniform failure shape every unsuccessful call is
// normalized into: an optional server-provided detail string and an
// optional HTTP status code (0 when the request never got a response).
type APIError struct {
	Detail     string
	StatusCode int
}

func (e *APIError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = "request failed"
	}
	if e.StatusCode == 0 {
		return detail
	}
	return fmt.Sprintf("%s (status %d)", detail, e.StatusCode)
}

// Unwrap maps well-known statuses onto shared sentinels so callers can use
// errors.Is without inspecting the status code themselves.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 0:
		return common.ErrUnavailable
	case 401:
		return common.ErrUnauthorized
	}
	return nil
}
