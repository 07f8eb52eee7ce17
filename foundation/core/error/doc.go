// Package error provides structured errors for texunc.
//
// Package: error
// Title: Structured Error Handling
// Description: An Error carries a Code, a Severity, free-form details and the
//              stack trace at creation. Severity is derived from the code
//              unless set explicitly, and log.Logger.LogError uses it to pick
//              the level an error is reported at.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Usage:
//
//	import mdwerror "github.com/texunc/texunc/foundation/core/error"
//
//	err := mdwerror.New("table has no \"result type\" level").
//		WithCode(mdwerror.CodeContractViolation).
//		WithDetail("levels", names)
//
//	if mdwerror.HasCode(err, mdwerror.CodeContractViolation) {
//		// programming error: report and abort
//	}
package error
