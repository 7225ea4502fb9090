package fakegen

import (
	"math"

	"github.com/roggervalf/fake-gen/mersenne"
)

// Random draws numbers, strings, booleans and UUIDs from a Mersenne Twister.
// Every call advances the engine, so two instances seeded alike produce the
// same sequence of values for the same sequence of calls.
//
// A Random is not safe for concurrent use.
type Random struct {
	mt *mersenne.Twister
}

// New returns a Random seeded from the current time.
func New() *Random {
	return &Random{mt: mersenne.New()}
}

// NewWithSeed returns a Random seeded with a single word.
func NewWithSeed(seed uint32) *Random {
	return &Random{mt: mersenne.NewWithSeed(seed)}
}

// NewWithSeedArray returns a Random seeded with an ordered key. With no key
// the engine falls back to mersenne.DefaultSeed on its first draw.
func NewWithSeedArray(key ...uint32) *Random {
	return &Random{mt: mersenne.NewWithArray(key)}
}

// NewWithTwister returns a Random drawing from tw. The engine is shared with
// whoever else holds it.
func NewWithTwister(tw *mersenne.Twister) *Random {
	return &Random{mt: tw}
}

// Seed reseeds the engine with a single word.
func (r *Random) Seed(seed uint32) {
	r.mt.Seed(seed)
}

// Twister returns the underlying engine.
func (r *Random) Twister() *mersenne.Twister {
	return r.mt
}

// Number returns a value on [min, max] quantized to precision. The default
// range is [0, 99999] with precision 1.
//
// The upper bound is made inclusive by adding precision to max only when max
// is non-negative; ranges with a negative max never reach max.
func (r *Random) Number(opts ...NumberOption) float64 {
	return r.number(resolveNumber(DefaultNumberRange, opts))
}

// Float is Number with a default precision of 0.01.
func (r *Random) Float(opts ...NumberOption) float64 {
	base := DefaultNumberRange
	base.Precision = DefaultFloatPrecision
	return r.number(resolveNumber(base, opts))
}

// Int is Number truncated to an int.
func (r *Random) Int(opts ...NumberOption) int {
	return int(r.Number(opts...))
}

func (r *Random) number(rng NumberRange) float64 {
	finalMax := rng.Max
	if finalMax >= 0 {
		finalMax += rng.Precision
	}

	n := math.Floor(r.rand(finalMax/rng.Precision, rng.Min/rng.Precision))

	// Dividing by the inverse keeps e.g. 6681493 * 0.01 exact.
	return n / (1 / rng.Precision)
}

func (r *Random) rand(hi, lo float64) float64 {
	return math.Floor(r.mt.Float64()*(hi-lo) + lo)
}

// Boolean flips a coin through Number.
func (r *Random) Boolean() bool {
	return r.Number(Max(1)) != 0
}

var defaultElements = []string{"a", "b", "c"}

// ArrayElement returns a random item. With no items it picks from "a", "b"
// and "c".
func (r *Random) ArrayElement(items ...string) string {
	if len(items) == 0 {
		items = defaultElements
	}
	return Element(r, items)
}

// Element returns a random item of items, or the zero value if items is
// empty.
func Element[T any](r *Random, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Int(Max(float64(len(items)-1)))]
}

// Elements returns count items of items in their original order. count is
// clamped to [0, len(items)]; a negative count picks a random count on
// [1, len(items)]. items is not modified.
func Elements[T any](r *Random, items []T, count int) []T {
	switch {
	case count < 0:
		count = r.Int(Min(1), Max(float64(len(items))))
	case count > len(items):
		count = len(items)
	}

	out := make([]T, len(items))
	copy(out, items)
	for remove := len(out) - count; remove > 0; remove-- {
		i := r.Int(Max(float64(len(out) - 1)))
		out = append(out[:i], out[i+1:]...)
	}
	return out
}
