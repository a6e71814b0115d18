package fujisaki

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
)

// NoCeiling disables accent saturation.
var NoCeiling = math.Inf(1)

// TimeAxis returns t[i] = i/fs for the round(tMax*fs) samples covering
// [0, tMax). The length is fixed first and the axis built to it, so the
// result never gains or loses a sample to floating-point stepping.
func TimeAxis(tMax, fs float64) ([]float64, error) {
	if err := validateHorizon(tMax, fs); err != nil {
		return nil, err
	}
	t := make([]float64, core.SampleCount(tMax, fs))
	for i := range t {
		t[i] = float64(i) / fs
	}
	return t, nil
}

func validateHorizon(tMax, fs float64) error {
	if !core.IsFinite(fs) || fs <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParameter, fs)
	}
	if !core.IsFinite(tMax) || tMax < 0 {
		return fmt.Errorf("%w: t_max must be >= 0: %f", ErrInvalidParameter, tMax)
	}
	return nil
}

// Gp is the phrase impulse response alpha^2 * tt * exp(-alpha*tt) for
// tt >= 0 and zero before the command.
func Gp(alpha, tt float64) float64 {
	if tt < 0 {
		return 0
	}
	return alpha * alpha * tt * math.Exp(-alpha*tt)
}

// Ga is the accent step response 1 - (1 + beta*tt) * exp(-beta*tt),
// clipped at gamma, for tt >= 0 and zero before the command.
// Pass NoCeiling to disable clipping.
func Ga(beta, gamma, tt float64) float64 {
	if tt < 0 {
		return 0
	}
	v := 1 - (1+beta*tt)*math.Exp(-beta*tt)
	if v > gamma {
		return gamma
	}
	return v
}

// PhraseResponse writes Gp(alpha, t[i]-onset) into dst.
func PhraseResponse(dst, t []float64, alpha, onset float64) {
	checkLen(dst, t)
	for i, ti := range t {
		dst[i] = Gp(alpha, ti-onset)
	}
}

// AccentStep writes Ga(beta, gamma, t[i]-onset) into dst.
func AccentStep(dst, t []float64, beta, gamma, onset float64) {
	checkLen(dst, t)
	for i, ti := range t {
		dst[i] = Ga(beta, gamma, ti-onset)
	}
}

// AccentResponse writes the rise at onset minus the fall at offset into dst.
func AccentResponse(dst, t []float64, beta, gamma, onset, offset float64) {
	checkLen(dst, t)
	for i, ti := range t {
		dst[i] = Ga(beta, gamma, ti-onset) - Ga(beta, gamma, ti-offset)
	}
}

func checkLen(dst, t []float64) {
	if len(dst) != len(t) {
		panic(fmt.Sprintf("fujisaki: dst length %d != time axis length %d", len(dst), len(t)))
	}
}
