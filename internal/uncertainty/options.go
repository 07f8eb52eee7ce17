// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     uncertainty
// Description: Formatting options and their builder
// Created:     2026-09-28
// License:     MIT
// ============================================================================

package uncertainty

import (
	mdwerror "github.com/texunc/texunc/foundation/core/error"
)

// Options controls the exponent window and decimal places used by Format.
// It is a plain value; pass it by value and derive variants with NewOptions.
type Options struct {
	// MaxPower and MinPower bound (inclusive) the exponents rendered in plain
	// decimal form. Values outside the window use scientific notation.
	MaxPower int
	MinPower int

	// MinDP is the minimum number of decimal places when an uncertainty is
	// given, MinDPNoError when it is not.
	MinDP        int
	MinDPNoError int

	// ZeroDPInts prints integral values without decimals when no
	// uncertainty is given and no exponent is needed.
	ZeroDPInts bool
}

// Option configures Options in NewOptions.
type Option func(*optionsBuilder)

type optionsBuilder struct {
	opts            Options
	minPowerSet     bool
	minDPNoErrorSet bool
}

// WithMaxPower sets the upper bound of the plain-form exponent window.
func WithMaxPower(p int) Option {
	return func(b *optionsBuilder) { b.opts.MaxPower = p }
}

// WithMinPower sets the lower bound of the plain-form exponent window.
// Without it the lower bound is -MaxPower.
func WithMinPower(p int) Option {
	return func(b *optionsBuilder) {
		b.opts.MinPower = p
		b.minPowerSet = true
	}
}

// WithMinDP sets the minimum decimal places used with an uncertainty.
func WithMinDP(dp int) Option {
	return func(b *optionsBuilder) { b.opts.MinDP = dp }
}

// WithMinDPNoError sets the minimum decimal places used without an
// uncertainty. Without it MinDP is used.
func WithMinDPNoError(dp int) Option {
	return func(b *optionsBuilder) {
		b.opts.MinDPNoError = dp
		b.minDPNoErrorSet = true
	}
}

// WithZeroDPInts toggles zero decimal places for integral values.
func WithZeroDPInts(on bool) Option {
	return func(b *optionsBuilder) { b.opts.ZeroDPInts = on }
}

// NewOptions returns the default options with opts applied in order.
func NewOptions(opts ...Option) Options {
	b := &optionsBuilder{
		opts: Options{
			MaxPower:   DefaultMaxPower,
			MinDP:      DefaultMinDP,
			ZeroDPInts: DefaultZeroDPInts,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	if !b.minPowerSet {
		b.opts.MinPower = -b.opts.MaxPower
	}
	if !b.minDPNoErrorSet {
		b.opts.MinDPNoError = b.opts.MinDP
	}
	return b.opts
}

// DefaultOptions returns NewOptions().
func DefaultOptions() Options {
	return NewOptions()
}

// Validate reports option combinations Format does not define behaviour
// for. Format never calls it.
func (o Options) Validate() error {
	if o.MinPower > o.MaxPower {
		return mdwerror.Newf("min_power %d is greater than max_power %d", o.MinPower, o.MaxPower).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("min_power", o.MinPower).
			WithDetail("max_power", o.MaxPower)
	}
	if o.MinDP < 0 {
		return mdwerror.Newf("min_dp must not be negative, got %d", o.MinDP).
			WithCode(mdwerror.CodeInvalidConfig)
	}
	if o.MinDPNoError < 0 {
		return mdwerror.Newf("min_dp_no_error must not be negative, got %d", o.MinDPNoError).
			WithCode(mdwerror.CodeInvalidConfig)
	}
	return nil
}
