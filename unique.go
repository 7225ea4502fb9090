package fakegen

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultMaxRetries is the number of consecutive repeated values after
	// which Execute gives up.
	DefaultMaxRetries = 20

	// DefaultMaxTime is the time budget of a single Execute call.
	DefaultMaxTime = 10 * time.Millisecond
)

type uniqueConfig struct {
	maxRetries int
	maxTime    time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

// UniqueOption configures a Unique.
type UniqueOption func(*uniqueConfig)

// WithMaxRetries sets how many consecutive repeated values Execute tolerates.
func WithMaxRetries(n int) UniqueOption {
	return func(c *uniqueConfig) { c.maxRetries = n }
}

// WithMaxTime sets the time budget of each Execute call.
func WithMaxTime(d time.Duration) UniqueOption {
	return func(c *uniqueConfig) { c.maxTime = d }
}

// WithLogger sets the logger that reports exhausted Execute calls.
func WithLogger(logger zerolog.Logger) UniqueOption {
	return func(c *uniqueConfig) { c.logger = logger }
}

// WithClock replaces time.Now for the time budget.
func WithClock(now func() time.Time) UniqueOption {
	return func(c *uniqueConfig) { c.now = now }
}

// Unique wraps generator calls so that no value is returned twice within a
// scope until the scope is cleared. Each scope is tracked independently.
//
// A Unique is not safe for concurrent use.
type Unique[T comparable] struct {
	cfg  uniqueConfig
	seen map[string]map[T]struct{}
}

// NewUnique returns a Unique with DefaultMaxRetries and DefaultMaxTime unless
// overridden.
func NewUnique[T comparable](opts ...UniqueOption) *Unique[T] {
	cfg := uniqueConfig{
		maxRetries: DefaultMaxRetries,
		maxTime:    DefaultMaxTime,
		now:        time.Now,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Unique[T]{
		cfg:  cfg,
		seen: make(map[string]map[T]struct{}),
	}
}

// Execute calls gen until it returns a value not yet seen in scope, records
// it and returns it.
//
// Execute fails with ErrExceededMaxTime once the time budget is spent, or
// with ErrExceededMaxRetries after maxRetries consecutive repeats. Both are
// checked before every call to gen, so a zero budget fails without calling
// it. A single call to gen is never interrupted.
func (u *Unique[T]) Execute(scope string, gen func() T) (T, error) {
	start := u.cfg.now()
	attempts := 0

	for {
		if elapsed := u.cfg.now().Sub(start); elapsed >= u.cfg.maxTime {
			return u.fail(scope, attempts, fmt.Errorf("%w: %d%s", ErrExceededMaxTime, u.cfg.maxTime.Milliseconds(), exhaustedHint))
		}
		if attempts >= u.cfg.maxRetries {
			return u.fail(scope, attempts, fmt.Errorf("%w: %d%s", ErrExceededMaxRetries, u.cfg.maxRetries, exhaustedHint))
		}

		v := gen()
		set, ok := u.seen[scope]
		if !ok {
			set = make(map[T]struct{})
			u.seen[scope] = set
		}
		if _, dup := set[v]; !dup {
			set[v] = struct{}{}
			return v, nil
		}
		attempts++
	}
}

const exhaustedHint = ": may not be able to generate any more unique values with current settings, try adjusting maxTime or maxRetries"

func (u *Unique[T]) fail(scope string, attempts int, err error) (T, error) {
	var zero T
	u.cfg.logger.Warn().
		Str("scope", scope).
		Int("attempts", attempts).
		Int("seen", len(u.seen[scope])).
		Err(err).
		Msg("unique values exhausted")
	return zero, err
}

// ExecuteFunc is Execute for a generator taking one argument.
func ExecuteFunc[A any, T comparable](u *Unique[T], scope string, gen func(A) T, arg A) (T, error) {
	return u.Execute(scope, func() T { return gen(arg) })
}

// Clear forgets the values seen in scope. Unknown scopes are ignored.
func (u *Unique[T]) Clear(scope string) {
	if set, ok := u.seen[scope]; ok {
		clear(set)
	}
}

// ClearAll forgets the values seen in every scope.
func (u *Unique[T]) ClearAll() {
	u.seen = make(map[string]map[T]struct{})
}

// Len returns the number of values seen in scope.
func (u *Unique[T]) Len(scope string) int {
	return len(u.seen[scope])
}
