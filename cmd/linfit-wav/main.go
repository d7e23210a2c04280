// Command linfit-wav estimates the linear relation between channels of a
// WAV recording, e.g. the gain and DC offset of one microphone relative to
// a reference.
//
// Usage:
//
//	linfit-wav -ref 0 -target 1 input.wav           # target = k*ref + b
//	linfit-wav -ref 0 -ref2 1 -target 2 input.wav   # target = a*ref + b*ref2 + c
//
// Eight frames spaced evenly across the file are used as sample points.
// Samples are normalized to [-1, 1] before fitting.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	linfit "github.com/tphakala/go-linear-fit"
)

var errInvalidConfig = errors.New("invalid configuration")

// config holds the parsed command line.
type config struct {
	path    string
	ref     int
	ref2    int
	target  int
	eps     float64
	verbose bool
}

// Validate checks channel selection and tolerance without opening the file.
func (c *config) Validate() error {
	if c.path == "" {
		return fmt.Errorf("%w: input file required", errInvalidConfig)
	}
	if c.ref < 0 || c.target < 0 || c.ref2 < unusedChannel {
		return fmt.Errorf("%w: channel indices must be non-negative", errInvalidConfig)
	}
	if c.ref == c.target || c.ref2 == c.ref || c.ref2 == c.target {
		return fmt.Errorf("%w: channels must be distinct", errInvalidConfig)
	}
	if c.eps < 0 {
		return fmt.Errorf("%w: -eps must be non-negative", errInvalidConfig)
	}
	return nil
}

// plane reports whether a second reference channel was requested.
func (c *config) plane() bool {
	return c.ref2 != unusedChannel
}

// maxChannel returns the highest channel index referenced.
func (c *config) maxChannel() int {
	return max(c.ref, c.ref2, c.target)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errInvalidConfig):
		log.Error().Err(err).Msg("usage error")
		os.Exit(exitUsage)
	default:
		log.Error().Err(err).Msg("calibration failed")
		os.Exit(exitFailed)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("linfit-wav", flag.ContinueOnError)
	fs.IntVar(&cfg.ref, "ref", defaultRefChannel, "Reference channel index")
	fs.IntVar(&cfg.ref2, "ref2", unusedChannel, "Second reference channel index (fits a plane)")
	fs.IntVar(&cfg.target, "target", defaultTarget, "Channel to express in terms of the references")
	fs.Float64Var(&cfg.eps, "eps", float64(linfit.DefaultEps), "Singular values at or below eps are treated as zero")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < minRequiredArgs {
		return nil, fmt.Errorf("%w: usage: linfit-wav [options] input.wav", errInvalidConfig)
	}
	cfg.path = fs.Arg(0)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	input, err := openWAVInput(cfg.path)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	if cfg.maxChannel() >= input.channels {
		return fmt.Errorf("%w: channel %d requested, file has %d channels",
			errInvalidConfig, cfg.maxChannel(), input.channels)
	}

	frames, err := input.readFrames()
	if err != nil {
		return err
	}

	if cfg.plane() {
		return calibratePlane(frames, cfg, stdout)
	}
	return calibrateLine(frames, cfg, stdout)
}

func calibrateLine(frames *frameSet, cfg *config, w io.Writer) error {
	x := frames.channel(cfg.ref)
	y := frames.channel(cfg.target)

	a, _ := linfit.BuildDesignData2D(&x, &y)
	logCondition(linfit.Condition2D(&a))

	c, err := linfit.FitLine(&x, &y, float32(cfg.eps))
	if err != nil {
		return fmt.Errorf("channel %d vs %d: %w", cfg.target, cfg.ref, err)
	}
	ssr := c.SumSquaredResiduals(&x, &y)
	log.Debug().Floats32("ref", x[:]).Floats32("target", y[:]).Float32("ssr", ssr).Msg("line fitted")

	_, err = fmt.Fprintf(w, "ch%d = %g*ch%d + %g\ngain=%g offset=%g ssr=%g\n",
		cfg.target, c.K, cfg.ref, c.B, c.K, c.B, ssr)
	return err
}

func calibratePlane(frames *frameSet, cfg *config, w io.Writer) error {
	x := frames.channel(cfg.ref)
	y := frames.channel(cfg.ref2)
	z := frames.channel(cfg.target)

	a, _ := linfit.BuildDesignData3D(&x, &y, &z)
	logCondition(linfit.Condition3D(&a))

	c, err := linfit.FitPlane(&x, &y, &z, float32(cfg.eps))
	if err != nil {
		return fmt.Errorf("channel %d vs %d,%d: %w", cfg.target, cfg.ref, cfg.ref2, err)
	}
	ssr := c.SumSquaredResiduals(&x, &y, &z)
	log.Debug().Floats32("ref", x[:]).Floats32("ref2", y[:]).Floats32("target", z[:]).Float32("ssr", ssr).Msg("plane fitted")

	_, err = fmt.Fprintf(w, "ch%d = %g*ch%d + %g*ch%d + %g\nssr=%g\n",
		cfg.target, c.A, cfg.ref, c.B, cfg.ref2, c.C, ssr)
	return err
}

// logCondition reports the design matrix condition number at debug level.
// A silent or clipped reference channel shows up here before the fit fails.
func logCondition(cond float64, err error) {
	if err != nil {
		log.Debug().Err(err).Msg("condition number unavailable")
		return
	}
	log.Debug().Float64("condition", cond).Msg("design matrix")
}
