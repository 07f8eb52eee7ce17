// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures raised by
//              the texunc formatter, table applier, readers and CLI.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeContractViolation marks a caller handing over data that breaks a
	// documented precondition (wrong table shape, missing label level).
	CodeContractViolation Code = "CONTRACT_VIOLATION"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"
	CodeReadFailed    Code = "READ_FAILED"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeContractViolation, CodeDatabaseError, CodeReadFailed,
		CodeInvalidFormat, CodeConfigError, CodeInvalidConfig:
		return true
	}
	return false
}
