// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     uncertainty
// Description: Default formatting options
// Created:     2026-09-28
// License:     MIT
// ============================================================================

package uncertainty

// Defaults applied by NewOptions. MinPower and MinDPNoError have no constant
// of their own: they follow MaxPower and MinDP unless set explicitly.
const (
	DefaultMaxPower   = 4
	DefaultMinDP      = 1
	DefaultZeroDPInts = true
)

// Literals used by the degenerate passthrough for missing values.
const (
	literalNone = "None"
	literalNaN  = "nan"
	literalInf  = "inf"
)
