// Command linfit fits a line or a plane to eight sample points.
//
// Usage:
//
//	linfit -x "-2.8,-1.6,-0.5,5,5.4,6.7,10.3,13.8" -y "33.1,21.1,9.9,-45.2,-49.1,-61.9,-98.1,-132.99"
//	linfit -x ... -y ... -z ...        # plane z = ax + by + c
//	linfit -in points.csv -eps 1e-6    # 8 rows of "x,y" or "x,y,z"
//
// The fitted coefficients and the residual sum of squares are written to
// stdout. Diagnostics go to stderr.
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
	xs, ys, zs string
	input      string
	eps        float64
	verbose    bool
}

// Validate checks that exactly one point source is given.
func (c *config) Validate() error {
	inline := c.xs != "" || c.ys != "" || c.zs != ""
	switch {
	case inline && c.input != "":
		return fmt.Errorf("%w: -in cannot be combined with -x/-y/-z", errInvalidConfig)
	case !inline && c.input == "":
		return fmt.Errorf("%w: provide -x and -y (and optionally -z) or -in", errInvalidConfig)
	case inline && (c.xs == "" || c.ys == ""):
		return fmt.Errorf("%w: both -x and -y are required", errInvalidConfig)
	case c.eps < 0:
		return fmt.Errorf("%w: -eps must be non-negative", errInvalidConfig)
	}
	return nil
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
		log.Error().Err(err).Msg("fit failed")
		os.Exit(exitFitFailed)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("linfit", flag.ContinueOnError)
	fs.StringVar(&cfg.xs, "x", "", "Eight comma-separated x values")
	fs.StringVar(&cfg.ys, "y", "", "Eight comma-separated y values")
	fs.StringVar(&cfg.zs, "z", "", "Eight comma-separated z values (fits a plane)")
	fs.StringVar(&cfg.input, "in", "", "CSV file with 8 rows of x,y or x,y,z")
	fs.Float64Var(&cfg.eps, "eps", float64(linfit.DefaultEps), "Singular values at or below eps are treated as zero")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
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

	pts, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	log.Debug().
		Int("dims", pts.dims).
		Floats32("x", pts.x[:]).
		Floats32("y", pts.y[:]).
		Float64("eps", cfg.eps).
		Msg("points loaded")

	return fitAndReport(pts, float32(cfg.eps), stdout)
}

// loadPoints reads the points from the inline flags or the CSV file.
func loadPoints(cfg *config) (*points, error) {
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return readCSV(f)
	}
	return parseInline(cfg.xs, cfg.ys, cfg.zs)
}

// fitAndReport fits pts and writes the coefficients to w.
func fitAndReport(pts *points, eps float32, w io.Writer) error {
	switch pts.dims {
	case lineDims:
		a, _ := linfit.BuildDesignData2D(&pts.x, &pts.y)
		logCondition(linfit.Condition2D(&a))
		c, err := linfit.FitLine(&pts.x, &pts.y, eps)
		if err != nil {
			return fmt.Errorf("line fit: %w", err)
		}
		ssr := c.SumSquaredResiduals(&pts.x, &pts.y)
		log.Debug().Float32("k", c.K).Float32("b", c.B).Float32("ssr", ssr).Msg("line fitted")
		_, err = fmt.Fprintf(w, "%s\nk=%g b=%g\nssr=%g\n", c, c.K, c.B, ssr)
		return err

	case planeDims:
		a, _ := linfit.BuildDesignData3D(&pts.x, &pts.y, &pts.z)
		logCondition(linfit.Condition3D(&a))
		c, err := linfit.FitPlane(&pts.x, &pts.y, &pts.z, eps)
		if err != nil {
			return fmt.Errorf("plane fit: %w", err)
		}
		ssr := c.SumSquaredResiduals(&pts.x, &pts.y, &pts.z)
		log.Debug().Float32("a", c.A).Float32("b", c.B).Float32("c", c.C).Float32("ssr", ssr).Msg("plane fitted")
		_, err = fmt.Fprintf(w, "%s\na=%g b=%g c=%g\nssr=%g\n", c, c.A, c.B, c.C, ssr)
		return err

	default:
		return fmt.Errorf("%w: unsupported dimension %d", errInvalidConfig, pts.dims)
	}
}

// logCondition reports the design matrix condition number at debug level.
func logCondition(cond float64, err error) {
	if err != nil {
		log.Debug().Err(err).Msg("condition number unavailable")
		return
	}
	log.Debug().Float64("condition", cond).Msg("design matrix")
}
