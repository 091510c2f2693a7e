// Package error defines domain-specific errors for the property operations backend.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidTransactionDate is returned when a transaction date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidPaymentKind is returned when an unknown payment capture kind is requested.
	ErrInvalidPaymentKind = errors.New("invalid payment kind")

	// ErrMissingRoomNumber is returned when a payment capture does not name a room.
	ErrMissingRoomNumber = errors.New("room number is required")

	// ErrRoomNotFound is returned when the referenced room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrEmptyImport is returned when an import payload contains no rows.
	ErrEmptyImport = errors.New("import contains no rows")

	// ErrMalformedImport is returned when an import payload cannot be read as CSV.
	ErrMalformedImport = errors.New("import is not valid CSV")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNonPositiveAmount is returned when a deposit, refund or deduction amount is not positive.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionDate LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidPaymentKind     LedgerErrorCode = "LDG-010002"
	ErrCodeMissingRoomNumber      LedgerErrorCode = "LDG-010003"
	ErrCodeDescriptionTooLong     LedgerErrorCode = "LDG-010004"
	ErrCodeEmptyImport            LedgerErrorCode = "LDG-010005"
	ErrCodeMalformedImport        LedgerErrorCode = "LDG-010006"
	ErrCodeNonPositiveAmount      LedgerErrorCode = "LDG-010007"

	// Lookup errors (02XXXX)
	ErrCodeRoomNotFound LedgerErrorCode = "LDG-020001"

	// Storage errors (99XXXX)
	ErrCodeLedgerAppendFailed LedgerErrorCode = "LDG-990001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
