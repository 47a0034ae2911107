package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrChatNotFound      = errors.New("no chat id captured for user")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrMalformedState    = errors.New("malformed conversation state")
)

// ValidationError carries the user-visible reason a draft was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
