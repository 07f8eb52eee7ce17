// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     uncertainty
// Description: Scalar formatter producing 1.234(5)\cdot10^{-6}
// Created:     2026-09-28
// License:     MIT
// ============================================================================

// Package uncertainty typesets a value and its uncertainty in the compact
// parenthesis notation used in physics papers, e.g. 1.234(5)\cdot10^{-6}.
package uncertainty

import (
	"math"
	"strconv"
	"strings"
)

// Measurement is a value with an optional uncertainty. A nil pointer means
// the quantity is missing altogether; NaN means it is not a number.
type Measurement struct {
	Value       *float64
	Uncertainty *float64
}

// Of returns a pointer to v, for building Measurements inline.
func Of(v float64) *float64 {
	return &v
}

// Format renders value with its uncertainty. A NaN uncertainty is treated
// as absent; a NaN value yields the "nan(...)" passthrough.
func Format(value, uncertainty float64, opts Options) string {
	return FormatMeasurement(Measurement{Value: &value, Uncertainty: &uncertainty}, opts)
}

// FormatValue renders a value that has no uncertainty.
func FormatValue(value float64, opts Options) string {
	return FormatMeasurement(Measurement{Value: &value}, opts)
}

// FormatMeasurement renders m as a plain or comma grouped decimal with the
// uncertainty on the last shown digits in parentheses, wrapped in
// $...\cdot10^{p}$ when the exponent falls outside the options' window.
func FormatMeasurement(m Measurement, opts Options) string {
	if m.Value == nil || math.IsNaN(*m.Value) {
		return literal(m.Value) + "(" + literal(m.Uncertainty) + ")"
	}
	value := *m.Value

	power := Power(value, opts)
	scaled := scaleDown(value, power)

	// only a finite, non-NaN uncertainty takes part in the output
	hasErr := m.Uncertainty != nil && !math.IsNaN(*m.Uncertainty) && !math.IsInf(*m.Uncertainty, 0)
	var scaledErr float64
	var dp int
	// a zero uncertainty counts as present and takes the MinDP path
	if hasErr {
		scaledErr = scaleDown(math.Abs(*m.Uncertainty), power)
		dp = DecimalPlaces(scaledErr, opts.MinDP)
	} else if power == 0 && value == math.RoundToEven(value) && opts.ZeroDPInts {
		dp = 0
	} else {
		dp = opts.MinDPNoError
	}
	if dp < 0 {
		dp = 0
	}

	var sb strings.Builder
	if power != 0 {
		sb.WriteByte('$')
	}
	sb.WriteString(fixed(scaled, dp))
	if hasErr {
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(scaledErr*math.Pow10(dp), 'f', 0, 64))
		sb.WriteByte(')')
	}
	if power != 0 {
		sb.WriteString(`\cdot10^{`)
		sb.WriteString(strconv.Itoa(power))
		sb.WriteString(`}$`)
	}
	return sb.String()
}

// Power returns the exponent used to render value: 0 for zero, infinities
// and exponents inside [MinPower, MaxPower], floor(log10(|value|)) otherwise.
func Power(value float64, opts Options) int {
	if value == 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	power := floorLog10(math.Abs(value))
	if opts.MinPower <= power && power <= opts.MaxPower {
		return 0
	}
	return power
}

// DecimalPlaces returns how many decimals put a (scaled) uncertainty on the
// final shown digit as a single digit from 1 to 9, but never fewer than
// minDP. If rounding would give "10" one decimal place is dropped so it
// shows as "1"; that correction is applied once.
func DecimalPlaces(scaledErr float64, minDP int) int {
	scaledErr = math.Abs(scaledErr)
	if math.IsNaN(scaledErr) || scaledErr == 0 || scaledErr >= 1 {
		return minDP
	}
	// ceil(|log10(u)|) == -floor(log10(u)) for 0 < u < 1
	dp := -floorLog10(scaledErr)
	if math.RoundToEven(scaledErr*math.Pow10(dp)) == 10 {
		dp--
	}
	if dp < minDP {
		return minDP
	}
	return dp
}

// scaleDown returns x / 10^power. Pow10 underflows to zero below 1e-308,
// so very negative powers are applied in two steps.
func scaleDown(x float64, power int) float64 {
	if power < -300 {
		return x * 1e300 / math.Pow10(power+300)
	}
	return x / math.Pow10(power)
}

// floorLog10 returns floor(log10(x)) for finite x > 0. math.Log10 can land
// a hair either side of an integer for exact powers of ten, so the estimate
// is checked against Pow10 wherever Pow10 does not underflow.
func floorLog10(x float64) int {
	p := int(math.Floor(math.Log10(x)))
	if math.Pow10(p) == 0 {
		return p
	}
	if math.Pow10(p) > x {
		p--
	} else if math.Pow10(p+1) <= x {
		p++
	}
	return p
}

// fixed formats x with dp decimals and thousands separators.
func fixed(x float64, dp int) string {
	if math.IsInf(x, 1) {
		return literalInf
	}
	if math.IsInf(x, -1) {
		return "-" + literalInf
	}
	return GroupThousands(strconv.FormatFloat(x, 'f', dp, 64))
}

// GroupThousands inserts commas every three digits into the integer part of
// a plain decimal string such as "-1234567.25".
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var sb strings.Builder
	sb.Grow(len(sign) + len(intPart) + len(intPart)/3 + len(frac))
	sb.WriteString(sign)
	head := len(intPart) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(intPart[:head])
	for i := head; i < len(intPart); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(intPart[i : i+3])
	}
	sb.WriteString(frac)
	return sb.String()
}

// literal renders a quantity the way the passthrough branch shows it.
func literal(v *float64) string {
	switch {
	case v == nil:
		return literalNone
	case math.IsNaN(*v):
		return literalNaN
	case math.IsInf(*v, 1):
		return literalInf
	case math.IsInf(*v, -1):
		return "-" + literalInf
	default:
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
}
