package fujisaki

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Synthesizer superposes command responses into sampled contours.
// It holds configuration only; calls do not share mutable state.
type Synthesizer struct {
	cfg     core.ProcessorConfig
	ceiling float64
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithCeiling sets the accent saturation ceiling gamma.
func WithCeiling(gamma float64) Option {
	return func(s *Synthesizer) {
		s.ceiling = gamma
	}
}

// NewSynthesizer creates a synthesizer. The default rate is 400 Hz with no
// accent ceiling.
func NewSynthesizer(opts ...core.ProcessorOption) *Synthesizer {
	return &Synthesizer{
		cfg:     core.ApplyProcessorOptions(opts...),
		ceiling: NoCeiling,
	}
}

// NewSynthesizerWithOptions creates a synthesizer with model-specific options.
func NewSynthesizerWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Synthesizer {
	s := NewSynthesizer(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SampleRate returns the synthesis rate in Hz.
func (s *Synthesizer) SampleRate() float64 {
	return s.cfg.SampleRate
}

// Ceiling returns the accent saturation ceiling.
func (s *Synthesizer) Ceiling() float64 {
	return s.ceiling
}

// PhraseContour sums the phrase responses of table over [0, tMax).
func (s *Synthesizer) PhraseContour(table Table, tMax float64) ([]float64, error) {
	return s.Contour(table, KindPhrase, tMax)
}

// AccentContour sums the accent responses of table over [0, tMax).
func (s *Synthesizer) AccentContour(table Table, tMax float64) ([]float64, error) {
	return s.Contour(table, KindAccent, tMax)
}

// Contour accumulates amplitude*response for every command of kind in table.
// The result always has round(tMax*fs) samples and is all zero when no
// command matches.
func (s *Synthesizer) Contour(table Table, kind Kind, tMax float64) ([]float64, error) {
	if kind != KindPhrase && kind != KindAccent {
		return nil, fmt.Errorf("%w: cannot synthesize %s commands", ErrInvalidParameter, kind)
	}
	if math.IsNaN(s.ceiling) || s.ceiling <= 0 {
		return nil, fmt.Errorf("%w: accent ceiling must be > 0: %f", ErrInvalidParameter, s.ceiling)
	}

	t, err := TimeAxis(tMax, s.cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(t))
	if len(out) == 0 {
		return out, nil
	}

	var scratch []float64
	for _, c := range table {
		switch c := c.(type) {
		case Phrase:
			if kind != KindPhrase {
				continue
			}
			scratch = core.EnsureLen(scratch, len(t))
			PhraseResponse(scratch, t, c.Alpha, c.Onset)
			accumulate(out, scratch, c.Amplitude)
		case Accent:
			if kind != KindAccent {
				continue
			}
			scratch = core.EnsureLen(scratch, len(t))
			AccentResponse(scratch, t, c.Beta, s.ceiling, c.Onset, c.Offset)
			accumulate(out, scratch, c.Amplitude)
		}
	}
	return out, nil
}

// accumulate adds amplitude*response into dst. response is scaled in place.
func accumulate(dst, response []float64, amplitude float64) {
	vecmath.ScaleBlockInPlace(response, amplitude)
	vecmath.AddBlockInPlace(dst, response)
}
