package main

import (
	"flag"
	"strings"
	"time"

	fakegen "github.com/roggervalf/fake-gen"
	"github.com/roggervalf/fake-gen/internal/config"
)

// Options represents the command-line parameters.
type Options struct {
	Kind       string
	N          int
	Seed       uint
	Min        float64
	Max        float64
	Precision  float64
	Count      int
	Upper      bool
	Prefix     bool
	Items      string
	Unique     bool
	MaxRetries int
	MaxTime    time.Duration
	LogLevel   string

	set map[string]bool
}

// NewOptions returns Options populated from the environment configuration.
func NewOptions(cfg config.Generator) *Options {
	return &Options{
		Kind:       "number",
		N:          1,
		Seed:       uint(cfg.Seed),
		Min:        fakegen.DefaultNumberRange.Min,
		Max:        fakegen.DefaultNumberRange.Max,
		Precision:  fakegen.DefaultNumberRange.Precision,
		Count:      fakegen.DefaultHexSpec.Count,
		Prefix:     fakegen.DefaultHexSpec.Prefix,
		MaxRetries: cfg.MaxRetries,
		MaxTime:    cfg.MaxTime,
		LogLevel:   cfg.LogLevel,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Kind, "kind", o.Kind, "value kind: number, float, int, boolean, element, alpha, alphanumeric, hex, uuid")
	fs.IntVar(&o.N, "n", o.N, "number of values to print")
	fs.UintVar(&o.Seed, "seed", o.Seed, "seed for reproducible output (0 = time based)")
	fs.Float64Var(&o.Min, "min", o.Min, "lower bound for number, float and int")
	fs.Float64Var(&o.Max, "max", o.Max, "upper bound for number, float and int")
	fs.Float64Var(&o.Precision, "precision", o.Precision, "quantization step for number, float and int")
	fs.IntVar(&o.Count, "count", o.Count, "characters per value for alpha, alphanumeric and hex")
	fs.BoolVar(&o.Upper, "upper", o.Upper, "use uppercase letters")
	fs.BoolVar(&o.Prefix, "prefix", o.Prefix, "prefix hex values with 0x")
	fs.StringVar(&o.Items, "items", o.Items, "comma separated items for element")
	fs.BoolVar(&o.Unique, "unique", o.Unique, "never print the same value twice")
	fs.IntVar(&o.MaxRetries, "max-retries", o.MaxRetries, "repeats tolerated per value with -unique")
	fs.DurationVar(&o.MaxTime, "max-time", o.MaxTime, "time budget per value with -unique")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level")
}

// Collect records which flags were given explicitly. Call it after Parse.
func (o *Options) Collect(fs *flag.FlagSet) {
	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
}

// numberOptions returns the range options given on the command line, so
// that Float keeps its own default precision.
func (o *Options) numberOptions() []fakegen.NumberOption {
	var opts []fakegen.NumberOption
	if o.set["min"] {
		opts = append(opts, fakegen.Min(o.Min))
	}
	if o.set["max"] {
		opts = append(opts, fakegen.Max(o.Max))
	}
	if o.set["precision"] {
		opts = append(opts, fakegen.Precision(o.Precision))
	}
	return opts
}

func (o *Options) stringOptions() []fakegen.StringOption {
	return []fakegen.StringOption{
		fakegen.Count(o.Count),
		fakegen.Uppercase(o.Upper),
		fakegen.Prefix(o.Prefix),
	}
}

func (o *Options) items() []string {
	if o.Items == "" {
		return nil
	}
	return strings.Split(o.Items, ",")
}
