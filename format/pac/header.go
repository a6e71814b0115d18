package pac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
)

// HeaderLines is the number of fixed header lines before the command table.
const HeaderLines = 20

// 1-based header line numbers of the numeric fields.
const (
	lineSampleCount    = 7
	lineBaseline       = 10
	lineSampleDuration = 11
)

// Header is the fixed-schema PAC header.
type Header struct {
	SampleCount    int
	SampleDuration float64 // seconds per sample
	Baseline       float64 // Fb in Hz

	// Lines holds the header text as read, for round-trips. Numeric lines
	// are regenerated from the fields on write.
	Lines [HeaderLines]string
}

// Duration returns the synthesis horizon t_max = SampleCount*SampleDuration.
func (h Header) Duration() float64 {
	return float64(h.SampleCount) * h.SampleDuration
}

// Validate reports header values the model cannot use.
func (h Header) Validate() error {
	if h.SampleCount <= 0 {
		return fmt.Errorf("%w: line %d: sample count must be > 0: %d", ErrMalformedHeader, lineSampleCount, h.SampleCount)
	}
	if !core.IsFinite(h.Baseline) || h.Baseline <= 0 {
		return fmt.Errorf("%w: line %d: baseline must be > 0: %f", ErrMalformedHeader, lineBaseline, h.Baseline)
	}
	if !core.IsFinite(h.SampleDuration) || h.SampleDuration <= 0 {
		return fmt.Errorf("%w: line %d: sample duration must be > 0: %f", ErrMalformedHeader, lineSampleDuration, h.SampleDuration)
	}
	return nil
}

// parseHeader extracts the numeric fields from the header lines. n is the
// number of lines actually present.
func parseHeader(lines [HeaderLines]string, n int) (Header, error) {
	h := Header{Lines: lines}

	field := func(line int) (string, error) {
		if line > n {
			return "", fmt.Errorf("%w: line %d missing", ErrMalformedHeader, line)
		}
		return strings.TrimSpace(lines[line-1]), nil
	}

	s, err := field(lineSampleCount)
	if err != nil {
		return Header{}, err
	}
	if h.SampleCount, err = strconv.Atoi(s); err != nil {
		return Header{}, fmt.Errorf("%w: line %d: sample count %q: %v", ErrMalformedHeader, lineSampleCount, s, err)
	}

	if h.Baseline, err = floatField(field, lineBaseline, "baseline"); err != nil {
		return Header{}, err
	}
	if h.SampleDuration, err = floatField(field, lineSampleDuration, "sample duration"); err != nil {
		return Header{}, err
	}

	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func floatField(field func(int) (string, error), line int, name string) (float64, error) {
	s, err := field(line)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q: %v", ErrMalformedHeader, line, name, s, err)
	}
	return v, nil
}

var defaultLines = [HeaderLines]string{
	"# Fujisaki model parameters",
	"#",
	"# line 7:  number of samples",
	"# line 10: baseline Fb (Hz)",
	"# line 11: sample duration (s)",
	"#",
	"",
	"#",
	"#",
	"",
	"",
	"#",
	"#",
	"#",
	"#",
	"#",
	"#",
	"#",
	"# phrase param=2, accent param=20",
	"# T1 T2 A param",
}

// render returns the header lines to write.
func (h Header) render() [HeaderLines]string {
	lines := h.Lines
	if lines == ([HeaderLines]string{}) {
		lines = defaultLines
	}
	lines[lineSampleCount-1] = strconv.Itoa(h.SampleCount)
	lines[lineBaseline-1] = formatFloat(h.Baseline)
	lines[lineSampleDuration-1] = formatFloat(h.SampleDuration)
	return lines
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
