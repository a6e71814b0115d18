// Package f0ascii reads and writes the FujiParaEditor F0 ascii exchange
// format: one frame per line, four space-separated fields
//
//	<pitch or 0> <voiced 0|1> <1.0> <voiced 0|1>
//
// with no header. Unvoiced frames are NaN in memory and 0.0 on disk. A
// voiced frame with a pitch of exactly 0 Hz therefore reads back as
// unvoiced; the format cannot tell the two apart.
package f0ascii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
)

// Errors returned by the codec.
var (
	ErrMalformedFrame   = errors.New("f0ascii: malformed frame")
	ErrInvalidPitch     = errors.New("f0ascii: pitch must be finite or NaN")
	ErrInvalidParameter = errors.New("f0ascii: invalid parameter")
)

const fieldsPerFrame = 4

// maxLineSize bounds a single frame line. Longer lines fail with
// bufio.ErrTooLong.
const maxLineSize = 1 << 20

// Track is a decoded pitch track.
type Track struct {
	Pitch       []float64 // Hz, NaN where unvoiced
	Times       []float64 // seconds, Times[i] = i*FramePeriod
	FramePeriod float64   // seconds
}

// Codec converts between pitch slices and the exchange format.
type Codec struct {
	cfg core.ProcessorConfig
}

// NewCodec creates a codec. The frame rate defaults to 100 Hz.
func NewCodec(opts ...core.ProcessorOption) *Codec {
	return &Codec{cfg: core.ApplyProcessorOptions(opts...)}
}

// FrameRate returns the frame rate in Hz.
func (c *Codec) FrameRate() float64 {
	return c.cfg.FrameRate
}

// Voicing reports which frames carry a pitch value.
func Voicing(pitch []float64) []bool {
	v := make([]bool, len(pitch))
	for i, p := range pitch {
		v[i] = !math.IsNaN(p)
	}
	return v
}

// Encode writes one line per frame.
func (c *Codec) Encode(w io.Writer, pitch []float64) error {
	bw := bufio.NewWriter(w)
	for i, p := range pitch {
		value, flag := p, 1.0
		switch {
		case math.IsNaN(p):
			value, flag = 0, 0
		case math.IsInf(p, 0):
			return fmt.Errorf("%w: frame %d: %v", ErrInvalidPitch, i, p)
		}
		f := formatFloat(flag)
		fmt.Fprintf(bw, "%s %s 1.0 %s\n", formatFloat(value), f, f)
	}
	return bw.Flush()
}

// Decode reads a track. Zero pitch values become NaN.
func (c *Codec) Decode(r io.Reader) (Track, error) {
	if err := c.cfg.Validate(); err != nil {
		return Track{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	var pitch []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)
	lineN := 0
	for sc.Scan() {
		lineN++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != fieldsPerFrame {
			return Track{}, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedFrame, lineN, fieldsPerFrame, len(fields))
		}
		var v [fieldsPerFrame]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Track{}, fmt.Errorf("%w: line %d: field %d %q: %v", ErrMalformedFrame, lineN, i+1, f, err)
			}
			if math.IsInf(x, 0) {
				return Track{}, fmt.Errorf("%w: line %d: field %d %q: infinite", ErrMalformedFrame, lineN, i+1, f)
			}
			v[i] = x
		}
		p := v[0]
		if p == 0 {
			p = math.NaN()
		}
		pitch = append(pitch, p)
	}
	if err := sc.Err(); err != nil {
		return Track{}, fmt.Errorf("f0ascii: read: %w", err)
	}

	times := make([]float64, len(pitch))
	for i := range times {
		times[i] = float64(i) / c.cfg.FrameRate
	}
	return Track{Pitch: pitch, Times: times, FramePeriod: 1 / c.cfg.FrameRate}, nil
}

// WriteFile writes pitch to path, replacing any existing file.
func (c *Codec) WriteFile(path string, pitch []float64) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return c.Encode(fh, pitch)
}

// ReadFile reads the track at path.
func (c *Codec) ReadFile(path string) (Track, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Track{}, err
	}
	defer fh.Close()
	return c.Decode(fh)
}

// formatFloat writes the shortest exact decimal, keeping a ".0" on whole
// numbers as the editor's reference files do.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
