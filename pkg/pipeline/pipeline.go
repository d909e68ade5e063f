package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/MacroPower/tablegen/pkg/genconfig"
	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/render"
)

// Kind selects a generator.
type Kind string

const (
	KindColors  Kind = "colors"
	KindKeysyms Kind = "keysyms"
	KindEnums   Kind = "enums"
)

// AllKinds lists every generator in run order.
var AllKinds = []Kind{KindColors, KindKeysyms, KindEnums}

// Generator renders outputs described by a [genconfig.Config].
type Generator struct {
	cfg    *genconfig.Config
	clock  render.Clock
	logger *slog.Logger
}

// Option configures a [Generator].
type Option func(*Generator)

// WithClock sets the clock used for the {gen_time} token.
func WithClock(c render.Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a [Generator] for cfg.
func New(cfg *genconfig.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		clock:  time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Plan validates the config sections for kinds and renders their outputs
// without writing anything.
func (g *Generator) Plan(kinds ...Kind) ([]render.Output, error) {
	genTime := render.GenTime(g.clock())

	var outputs []render.Output

	for _, k := range kinds {
		var (
			out []render.Output
			err error
		)

		switch k {
		case KindColors:
			out, err = g.Colors(genTime)
		case KindKeysyms:
			out, err = g.Keysyms(genTime)
		case KindEnums:
			out, err = g.Enums(genTime)
		default:
			err = fmt.Errorf("%w: unknown generator %q", generrors.ErrInvalidConfig, k)
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		outputs = append(outputs, out...)
	}

	return outputs, nil
}

// Run plans kinds and writes the resulting outputs.
func (g *Generator) Run(kinds ...Kind) error {
	outputs, err := g.Plan(kinds...)
	if err != nil {
		return err
	}

	for _, o := range outputs {
		if err := o.Write(); err != nil {
			return err
		}

		g.logger.Info("wrote file", slog.String("path", o.Path), slog.Int("bytes", len(o.Content)))
	}

	return nil
}

// withInput opens path, hands it to fn and closes it on every return path.
func withInput(path string, fn func(io.Reader) error) error {
	//nolint:gosec // G304 not relevant for client-side generation.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", generrors.ErrInputNotFound, err)
	}
	defer f.Close() //nolint:errcheck // Read-only.

	return fn(f)
}

// loadTemplate reads the template at path, or returns fallback when path
// is empty.
func (g *Generator) loadTemplate(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}

	return render.LoadTemplate(g.cfg.Resolve(path))
}
