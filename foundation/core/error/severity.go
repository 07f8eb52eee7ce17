// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is
//              reported at.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input that the user can fix directly
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh indicates a programming error or a broken data source
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeContractViolation, CodeDatabaseError, CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
