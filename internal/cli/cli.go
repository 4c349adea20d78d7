// Package cli wires flags, environment and logging around gridmin.Sum.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridmin/gridmin"
	"github.com/katalvlaran/gridmin/internal/config"
	"github.com/katalvlaran/gridmin/internal/input"
)

// StdinPath selects the provided input stream instead of a file.
const StdinPath = "-"

// Config holds configuration for one gridmin run. Flags override env.
type Config struct {
	Input     string `env:"GRIDMIN_INPUT" envDefault:"-"`
	LogLevel  string `env:"GRIDMIN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"GRIDMIN_LOG_FORMAT" envDefault:"text"`

	// Args holds positional values; when non-empty they replace Input.
	Args []string
}

// ParseConfig reads env defaults, then parses flags from args into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, `input file with "n m a b g0 x y z" ("-" = stdin)`)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()

	return cfg, nil
}

// NewLogger builds a slog.Logger on w per cfg, tagged with a fresh run_id.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("log format %q: want text or json", cfg.LogFormat)
	}

	return slog.New(h).With("run_id", uuid.NewString()), nil
}

// Run reads the parameters, computes the sum and writes it to out as a
// decimal line. in is used when cfg.Input is StdinPath and no positional
// values were given.
func Run(cfg Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p, err := readParams(cfg, in)
	if err != nil {
		return err
	}
	logger.Debug("input parsed", "n", p.N, "m", p.M, "a", p.A, "b", p.B,
		"g0", p.Seed, "x", p.Mul, "y", p.Inc, "z", p.Mod)

	total, err := gridmin.Sum(p, gridmin.WithLogger(logger))
	if err != nil {
		logger.Error("sum failed", "error", err)

		return fmt.Errorf("compute: %w", err)
	}
	logger.Info("sum computed", "windows", p.Windows(), "sum", total)

	_, err = fmt.Fprintf(out, "%d\n", total)

	return err
}

func readParams(cfg Config, in io.Reader) (gridmin.Params, error) {
	if len(cfg.Args) > 0 {
		p, err := input.ParseArgs(cfg.Args)
		if err != nil {
			return gridmin.Params{}, fmt.Errorf("parse args: %w", err)
		}

		return p, nil
	}

	if cfg.Input != StdinPath && cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return gridmin.Params{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		return gridmin.Params{}, errors.New("input is required")
	}

	p, err := input.Parse(in)
	if err != nil {
		return gridmin.Params{}, fmt.Errorf("parse input: %w", err)
	}

	return p, nil
}
