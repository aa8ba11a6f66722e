package forecast

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	MinTemperatureC = -20
	// MaxTemperatureC is exclusive.
	MaxTemperatureC = 55
)

var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

var ErrInvalidCount = errors.New("forecast count must not be negative")

// Record is a single generated forecast. It has no identity beyond its
// position in the generated sequence.
type Record struct {
	Date         time.Time
	TemperatureC int
	Summary      string
}

type Generator struct {
	now       func() time.Time
	newSource func() rand.Source
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithSource replaces the per-call random source factory. Each Generate call
// invokes the factory once.
func WithSource(newSource func() rand.Source) Option {
	return func(g *Generator) {
		g.newSource = newSource
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		newSource: func() rand.Source {
			return rand.NewPCG(rand.Uint64(), rand.Uint64())
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns n records dated sequentially from tomorrow.
func (g *Generator) Generate(n int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	rng := rand.New(g.newSource())
	base := g.now()

	records := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, Record{
			Date:         base.AddDate(0, 0, i),
			TemperatureC: MinTemperatureC + rng.IntN(MaxTemperatureC-MinTemperatureC),
			Summary:      Summaries[rng.IntN(len(Summaries))],
		})
	}

	return records, nil
}

// Fahrenheit truncates toward zero, so -20 maps to -3 rather than -4.
func Fahrenheit(celsius int) int {
	return 32 + int(float64(celsius)/0.5556)
}
