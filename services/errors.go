package services

import "fmt"

// Kind classifies a service failure so the boundary layer can map it to a
// stable response shape.
type Kind int

const (
	KindValidation    Kind = iota // malformed or missing input, no partial effects
	KindAuthorization             // caller lacks rights over the target entity
	KindNotFound                  // referenced entity absent
	KindConflict                  // state precondition violated at commit time
)

// Error is a typed, human-readable service failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Authorizationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}
