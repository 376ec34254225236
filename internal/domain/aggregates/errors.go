package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies why an operation write failed. Handlers map the codes
// onto HTTP statuses: validation and invariant_violation become 400,
// not_found 404, conflict 409, and everything else a generic 500.
type ErrorCode string

const (
	// CodeValidation: the request itself is malformed (missing codigo, end
	// date not after start, duplicate assignment ids).
	CodeValidation ErrorCode = "validation"
	// CodeNotFound: a referenced row (status name, vessel, route, berth,
	// container, employee) does not exist.
	CodeNotFound ErrorCode = "not_found"
	// CodeConflict: an operation or detail code is already taken, either at
	// the pre-write check or on the unique index inside the transaction.
	CodeConflict ErrorCode = "conflict"
	// CodeInvariantViolation: the request is well-formed but breaks a
	// business rule.
	CodeInvariantViolation ErrorCode = "invariant_violation"
	// CodePreconditionFailed and CodeRetryable are produced only by the
	// store-level error mapping (foreign keys, serialization, deadlocks),
	// never constructed directly.
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	// CodeInternal covers everything the mapping cannot classify. The
	// transaction has rolled back; the detail stays out of API responses.
	CodeInternal ErrorCode = "internal"
)

// Error is what every aggregate operation returns on failure: the code
// drives the HTTP mapping, Op names the operation for logs and metrics, and
// Cause keeps the store error reachable for errors.Is/As.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error from scratch. Used for failures that
// originate inside the aggregate itself, e.g. a committed write that
// produced nil ids.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap classifies an existing failure without losing it: the cause's text
// becomes the message (so "vessel not found: <id>" survives into the API
// response) and the cause itself stays on the chain.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode reports whether err carries the given code anywhere on its chain.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code, or "" when err is not an aggregate error.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}
