// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     version
// Description: Central version management
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Version is the release of the texunc CLI and library
	Version = "1.0.0"

	// Name is the program name used in logs and version output
	Name = "texunc"
)

// Commit is set at build time via -ldflags "-X .../version.Commit=..."
var Commit = "unknown"

// String returns the version line printed by "texunc version"
func String() string {
	return fmt.Sprintf("%s %s (commit %s)", Name, Version, Commit)
}
