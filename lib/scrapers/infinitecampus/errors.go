package infinitecampus

import (
	"errors"
	"fmt"
)

var ErrDistrictNotFound = errors.New("district not found")
var ErrSchoolNotFound = errors.New("school not found")

// AuthError means the portal rejected the supplied credentials.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (%d)", e.Status)
	}
	return fmt.Sprintf("authentication failed (%d): %s", e.Status, e.Message)
}

// PreconditionError means an operation was invoked before the stage it
// depends on completed.
type PreconditionError struct {
	Required string
}

func (e *PreconditionError) Error() string {
	return "precondition not met: " + e.Required
}

// UpstreamError carries an unexpected status code or unparseable
// payload from the portal.
type UpstreamError struct {
	Status int
	Body   string
	cause  error
}

func (e *UpstreamError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("unexpected upstream response (%d): %s", e.Status, e.cause)
	}
	return fmt.Sprintf("unexpected upstream response (%d): %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}
