package storage

import "github.com/viant/cloudbridge/schema"

// Error is a container operation failure with a stable reason.
type Error struct {
	reason  string
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Reason returns failure reason, e.g. ERR_FILE_NOT_EXIST
func (e *Error) Reason() string {
	return e.reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(reason, path, message string, err error) *Error {
	return &Error{reason: reason, Path: path, Message: message, Err: err}
}

var errContainerUnavailable = newError(schema.ReasonContainerUnavailable, "", "cloud container is not configured", nil)
