package fujisaki

import (
	"errors"
	"math"
	"testing"
)

func TestTimeAxisLength(t *testing.T) {
	tests := []struct {
		tMax float64
		fs   float64
		want int
	}{
		{tMax: 4, fs: 400, want: 1600},
		{tMax: 800 * 0.005, fs: 400, want: 1600},
		{tMax: 0.7, fs: 400, want: 280},
		{tMax: 1.0 / 3, fs: 300, want: 100},
		{tMax: 0.0012, fs: 1000, want: 1},
		{tMax: 0, fs: 400, want: 0},
	}

	for _, tt := range tests {
		axis, err := TimeAxis(tt.tMax, tt.fs)
		if err != nil {
			t.Fatalf("TimeAxis(%v, %v) error = %v", tt.tMax, tt.fs, err)
		}
		if len(axis) != tt.want {
			t.Fatalf("TimeAxis(%v, %v) len = %d, want %d", tt.tMax, tt.fs, len(axis), tt.want)
		}
		for i, v := range axis {
			if v != float64(i)/tt.fs {
				t.Fatalf("axis[%d] = %v, want %v", i, v, float64(i)/tt.fs)
			}
		}
	}
}

func TestTimeAxisInvalid(t *testing.T) {
	tests := []struct {
		name string
		tMax float64
		fs   float64
	}{
		{name: "zero rate", tMax: 1, fs: 0},
		{name: "negative rate", tMax: 1, fs: -400},
		{name: "negative horizon", tMax: -0.1, fs: 400},
		{name: "nan horizon", tMax: math.NaN(), fs: 400},
		{name: "inf horizon", tMax: math.Inf(1), fs: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TimeAxis(tt.tMax, tt.fs)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestGpCausalityAndDecay(t *testing.T) {
	for _, tt := range []float64{-10, -1, -1e-9, 0} {
		if got := Gp(2, tt); got != 0 {
			t.Fatalf("Gp(2, %v) = %v, want 0", tt, got)
		}
	}

	if got, want := Gp(2, 0.5), 2/math.E; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Gp(2, 0.5) = %v, want %v", got, want)
	}

	prev := Gp(2, 0.5)
	for tt := 1.0; tt <= 60; tt += 1 {
		v := Gp(2, tt)
		if v >= prev {
			t.Fatalf("Gp not decaying at tt=%v: %v >= %v", tt, v, prev)
		}
		prev = v
	}
	if prev > 1e-40 {
		t.Fatalf("Gp(2, 60) = %v, want ~0", prev)
	}
}

func TestGaCausalityAndMonotonic(t *testing.T) {
	for _, tt := range []float64{-5, -0.01, 0} {
		if got := Ga(20, NoCeiling, tt); got != 0 {
			t.Fatalf("Ga(20, inf, %v) = %v, want 0", tt, got)
		}
	}

	prev := 0.0
	for i := 1; i <= 400; i++ {
		v := Ga(20, NoCeiling, float64(i)/400)
		if v < prev {
			t.Fatalf("Ga decreasing at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
	if math.Abs(prev-1) > 1e-6 {
		t.Fatalf("Ga(20, inf, 1) = %v, want ~1", prev)
	}
}

func TestGaBoundedByCeiling(t *testing.T) {
	for _, gamma := range []float64{0.1, 0.5, 0.9} {
		for i := -10; i <= 800; i++ {
			tt := float64(i) / 400
			if v := Ga(20, gamma, tt); v > gamma {
				t.Fatalf("Ga(20, %v, %v) = %v exceeds ceiling", gamma, tt, v)
			}
		}
		if got := Ga(20, gamma, 2); got != gamma {
			t.Fatalf("Ga(20, %v, 2) = %v, want saturated %v", gamma, got, gamma)
		}
	}
}

func TestAccentResponseShape(t *testing.T) {
	axis, err := TimeAxis(2, 400)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, len(axis))
	AccentResponse(got, axis, 20, NoCeiling, 0.5, 0.7)

	for i := 0; i <= 200; i++ {
		if got[i] != 0 {
			t.Fatalf("response[%d] = %v before onset, want 0", i, got[i])
		}
	}
	for i := 201; i <= 280; i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("response not rising at %d: %v <= %v", i, got[i], got[i-1])
		}
	}
	if tail := got[len(got)-1]; tail > 1e-9 {
		t.Fatalf("response tail = %v, want ~0", tail)
	}

	step := make([]float64, len(axis))
	AccentStep(step, axis, 20, NoCeiling, 0.5)
	for i := 0; i < 280; i++ {
		if got[i] != step[i] {
			t.Fatalf("before offset response[%d] = %v, want step %v", i, got[i], step[i])
		}
	}
}

func TestPhraseResponseMatchesGp(t *testing.T) {
	axis, err := TimeAxis(1, 400)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, len(axis))
	PhraseResponse(got, axis, 2, 0.25)
	for i, ti := range axis {
		if want := Gp(2, ti-0.25); got[i] != want {
			t.Fatalf("response[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestResponseLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	PhraseResponse(make([]float64, 3), make([]float64, 4), 2, 0)
}
