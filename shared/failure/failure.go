package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// pqUniqueViolation is the condition name lib/pq reports for SQLSTATE 23505.
const pqUniqueViolation = "unique_violation"

// Failure is an error that carries the HTTP status handlers answer with.
// Its message is sent to the client verbatim.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError     = New(http.StatusForbidden, "Access denied")
	InvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// FromDatabase turns a unique constraint violation into a Conflict carrying msg.
// Any other error is returned unchanged.
func FromDatabase(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == pqUniqueViolation {
		return Conflict(msg)
	}

	return err
}

// GetCode is the status for err, 500 unless a Failure is in its chain.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
