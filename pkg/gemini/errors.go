package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential   = errors.New("gemini: API key is required")
	ErrUnsupportedFileType = errors.New("gemini: unsupported file type")
	ErrFileNotFound        = errors.New("gemini: file not found")
	ErrInvalidConfig       = errors.New("gemini: invalid config")
	ErrInvalidHistory      = errors.New("gemini: invalid history")
	ErrTransport           = errors.New("gemini: transport error")
	ErrInvalidResponse     = errors.New("gemini: invalid response")
	ErrNoContent           = errors.New("gemini: no content generated")
)

// TransportError reports a failure below the HTTP status level: the request
// never produced a status code (refused, DNS, TLS, timeout, cancellation).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Error lets an APIFailure be used as an error through Result.Err.
func (f *APIFailure) Error() string {
	return fmt.Sprintf("gemini: API returned status %d: %s", f.StatusCode, f.Message)
}
