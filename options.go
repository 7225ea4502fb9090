package fakegen

// NumberRange describes the interval and quantization step of Number and
// Float draws.
type NumberRange struct {
	Min       float64
	Max       float64
	Precision float64
}

// DefaultNumberRange is the range used by Number when no option is given.
var DefaultNumberRange = NumberRange{Min: 0, Max: 99999, Precision: 1}

// DefaultFloatPrecision is the precision used by Float unless overridden.
const DefaultFloatPrecision = 0.01

// NumberOption adjusts a NumberRange before a draw.
type NumberOption func(*NumberRange)

// Min sets the lower bound.
func Min(v float64) NumberOption {
	return func(r *NumberRange) { r.Min = v }
}

// Max sets the upper bound.
func Max(v float64) NumberOption {
	return func(r *NumberRange) { r.Max = v }
}

// Precision sets the quantization step, e.g. 0.01 for two decimals.
func Precision(v float64) NumberOption {
	return func(r *NumberRange) { r.Precision = v }
}

// Range replaces the whole range. Zero fields are taken as given, not
// defaulted.
func Range(rng NumberRange) NumberOption {
	return func(r *NumberRange) { *r = rng }
}

func resolveNumber(base NumberRange, opts []NumberOption) NumberRange {
	rng := base
	for _, opt := range opts {
		opt(&rng)
	}
	return rng
}

// AlphaSpec configures letter and alphanumeric draws.
type AlphaSpec struct {
	Count     int
	Uppercase bool
}

// HexSpec configures hexadecimal draws.
type HexSpec struct {
	AlphaSpec
	Prefix bool
}

// DefaultHexSpec is the spec used by Hexadecimal when no option is given.
// Alpha and AlphaNumeric use its embedded AlphaSpec.
var DefaultHexSpec = HexSpec{AlphaSpec: AlphaSpec{Count: 1}, Prefix: true}

// StringOption adjusts a HexSpec before a draw. Prefix is ignored by Alpha
// and AlphaNumeric.
type StringOption func(*HexSpec)

// Count sets the number of characters to draw.
func Count(n int) StringOption {
	return func(s *HexSpec) { s.Count = n }
}

// Uppercase selects the uppercase alphabet.
func Uppercase(upper bool) StringOption {
	return func(s *HexSpec) { s.Uppercase = upper }
}

// Prefix toggles the 0x prefix of Hexadecimal.
func Prefix(prefix bool) StringOption {
	return func(s *HexSpec) { s.Prefix = prefix }
}

func resolveString(opts []StringOption) HexSpec {
	spec := DefaultHexSpec
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}
