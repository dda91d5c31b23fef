package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingInputData indicates a required payroll input (employee, rate card,
// attendance summary) is absent. Blocking: no partial statement is produced.
var ErrMissingInputData = errors.New("required payroll input data is missing")

// ErrMissingRateData indicates neither a rate card nor sufficient employee
// overrides exist to resolve a pay rate. The engine never invents a zero rate.
var ErrMissingRateData = errors.New("no rate card or salary overrides for employee")

// ErrAnomalousAttendance indicates inconsistent punches were found for the
// period. Blocking for final runs; draft runs carry the flag instead.
var ErrAnomalousAttendance = errors.New("attendance data contains anomalous days")

// ErrUnbalancedEntry indicates a journal entry failed the debit/credit balance
// check. Always blocking: an unbalanced entry is never exported.
var ErrUnbalancedEntry = errors.New("journal entry debits do not equal credits")

// ErrFieldOverflow indicates a value does not fit a fixed-width export field.
// Blocking for the offending record only.
var ErrFieldOverflow = errors.New("value exceeds fixed-width export field")

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message suitable for surfacing to the caller.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError constructs an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
