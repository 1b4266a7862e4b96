package storefront

import "errors"

// ErrorKind classifies boundary failures so call sites can decide how to
// surface them: validation and auth messages go inline to the user, not-found
// is handled defensively, transport failures are retryable by re-invocation.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuth
	KindNotFound
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	}
	return "unknown"
}

// APIError is the typed failure returned by every boundary call.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is a boundary auth rejection, which forces
// a sign-out for background calls.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}

func IsValidationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}
