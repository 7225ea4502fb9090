// Command fakegen prints seed-reproducible fake values, one per line.
//
//	fakegen -kind number -max 100 -seed 100      # 54
//	fakegen -kind uuid -n 3
//	fakegen -kind hex -count 4 -n 16 -unique
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	fakegen "github.com/roggervalf/fake-gen"
	"github.com/roggervalf/fake-gen/internal/config"
)

var errUnknownKind = errors.New("unknown kind")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		config.Exitf("fakegen: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadGenerator()
	if err != nil {
		return err
	}

	opts := NewOptions(cfg)
	fs := flag.NewFlagSet("fakegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts.Collect(fs)

	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Str("kind", opts.Kind).Logger()

	draw, err := drawer(opts)
	if err != nil {
		return err
	}

	seed := uint32(opts.Seed)
	if seed == 0 {
		seed = uint32(time.Now().UnixMilli())
		logger.Info().Uint32("seed", seed).Msg("using time based seed")
	}
	r := fakegen.NewWithSeed(seed)

	next := func() (string, error) { return draw(r), nil }
	if opts.Unique {
		u := fakegen.NewUnique[string](
			fakegen.WithMaxRetries(opts.MaxRetries),
			fakegen.WithMaxTime(opts.MaxTime),
			fakegen.WithLogger(logger),
		)
		next = func() (string, error) {
			return u.Execute(opts.Kind, func() string { return draw(r) })
		}
	}

	for i := 0; i < opts.N; i++ {
		v, err := next()
		if err != nil {
			return fmt.Errorf("value %d: %w", i+1, err)
		}
		fmt.Fprintln(stdout, v)
	}

	logger.Debug().Uint32("seed", seed).Int("n", opts.N).Bool("unique", opts.Unique).Msg("done")
	return nil
}

// drawer maps a kind to a function producing one formatted value.
func drawer(opts *Options) (func(r *fakegen.Random) string, error) {
	formatFloat := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	numOpts := opts.numberOptions()
	strOpts := opts.stringOptions()

	switch opts.Kind {
	case "number":
		return func(r *fakegen.Random) string { return formatFloat(r.Number(numOpts...)) }, nil
	case "float":
		return func(r *fakegen.Random) string { return formatFloat(r.Float(numOpts...)) }, nil
	case "int":
		return func(r *fakegen.Random) string { return strconv.Itoa(r.Int(numOpts...)) }, nil
	case "boolean":
		return func(r *fakegen.Random) string { return strconv.FormatBool(r.Boolean()) }, nil
	case "element":
		items := opts.items()
		return func(r *fakegen.Random) string { return r.ArrayElement(items...) }, nil
	case "alpha":
		return func(r *fakegen.Random) string { return r.Alpha(strOpts...) }, nil
	case "alphanumeric":
		return func(r *fakegen.Random) string { return r.AlphaNumeric(strOpts...) }, nil
	case "hex":
		return func(r *fakegen.Random) string { return r.Hexadecimal(strOpts...) }, nil
	case "uuid":
		return func(r *fakegen.Random) string { return r.UUID() }, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, opts.Kind)
	}
}
