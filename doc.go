// Package fakegen generates seed-reproducible fake values: ranged numbers,
// letters, hexadecimal strings, booleans and RFC 4122 version 4 UUIDs, all
// drawn from a Mersenne Twister (MT19937).
//
// Two generators built with the same seed return the same values for the
// same sequence of calls, on every run and on every platform. This makes
// fixtures and test data stable without checking them in.
//
// Basic Usage:
//
//	r := fakegen.NewWithSeed(100)
//	r.Number(fakegen.Max(100))                       // 54
//	r.Float(fakegen.Min(1), fakegen.Max(2))          // e.g. 1.37
//	r.Hexadecimal(fakegen.Count(4))                  // e.g. "0x3fa0"
//	r.UUID()                                         // e.g. "49e71c40-9b21-4371-9699-2def33f62e66"
//
// Options:
//
// Number and Float take NumberOption values (Min, Max, Precision, Range);
// Alpha, AlphaNumeric and Hexadecimal take StringOption values (Count,
// Uppercase, Prefix). Options are merged into a fresh copy of the defaults,
// so callers' values are never modified. The defaults are part of the
// contract:
//   - Number: min 0, max 99999, precision 1
//   - Float: precision 0.01
//   - strings: count 1, lowercase
//   - Hexadecimal: with 0x prefix
//
// Unique Values:
//
// Unique wraps any generator and never returns the same value twice within
// a scope until the scope is cleared:
//
//	u := fakegen.NewUnique[string]()
//	id, err := u.Execute("user-ids", func() string { return r.AlphaNumeric(fakegen.Count(6)) })
//	if errors.Is(err, fakegen.ErrExceededMaxRetries) {
//	    // the generator's domain is exhausted
//	}
//
// Each Execute call is bounded twice: by the number of consecutive repeats
// (DefaultMaxRetries) and by a time budget (DefaultMaxTime).
//
// Thread Safety:
//
// Random, Unique and mersenne.Twister keep mutable state and are not safe
// for concurrent use. Give each goroutine its own instance.
//
// Security:
//
// MT19937 is predictable from its output. Do not use this package for keys,
// tokens or anything security sensitive.
package fakegen
