package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies a failure into the taxonomy surfaced to API clients.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindAccountLocked
	KindAccountDeleted
	KindRoleDeleted
	KindNotFound
	KindInvalidReference
	KindConflict
	KindValidation
)

// Error carries a classified failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of an error; anything unclassified
// is an internal failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing text for an error. Internal failures
// are reported generically so data-layer details never leak to callers.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error kind to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindAccountLocked, KindAccountDeleted, KindRoleDeleted,
		KindInvalidReference, KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromDB classifies a data-layer error at the point of call. GORM's
// translated errors cover uniqueness and foreign key violations; anything
// else stays internal.
func FromDB(err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, notFoundMessage, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, "record already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(KindInvalidReference, "invalid foreign key reference", err)
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return Wrap(KindValidation, "invalid data provided", err)
	default:
		return Wrap(KindInternal, "database operation failed", err)
	}
}
