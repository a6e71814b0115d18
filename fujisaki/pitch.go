package fujisaki

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Reconstruct returns the pitch trajectory exp(accent + log(baseline) + phrase).
//
// It is evaluated as baseline*exp(accent+phrase), so zero excitation yields
// the baseline exactly rather than exp(log(baseline)).
func Reconstruct(baseline float64, accent, phrase []float64) ([]float64, error) {
	out, err := excitation(baseline, accent, phrase)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = baseline * math.Exp(v)
	}
	return out, nil
}

// LogPitch returns the log-domain trajectory accent + log(baseline) + phrase.
func LogPitch(baseline float64, accent, phrase []float64) ([]float64, error) {
	out, err := excitation(baseline, accent, phrase)
	if err != nil {
		return nil, err
	}
	logBase := math.Log(baseline)
	for i := range out {
		out[i] += logBase
	}
	return out, nil
}

func excitation(baseline float64, accent, phrase []float64) ([]float64, error) {
	if !core.IsFinite(baseline) || baseline <= 0 {
		return nil, fmt.Errorf("%w: baseline must be > 0: %f", ErrInvalidParameter, baseline)
	}
	if len(accent) != len(phrase) {
		return nil, fmt.Errorf("%w: accent %d samples, phrase %d samples", ErrShapeMismatch, len(accent), len(phrase))
	}
	out := make([]float64, len(accent))
	if len(out) > 0 {
		vecmath.AddBlock(out, accent, phrase)
	}
	return out, nil
}
