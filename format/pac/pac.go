package pac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fujisaki/dsp/core"
	"github.com/cwbudde/algo-fujisaki/fujisaki"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line. Lines longer than this fail with
// bufio.ErrTooLong.
const maxLineSize = 1 << 20

// File is a parsed PAC file.
type File struct {
	Header   Header
	Commands fujisaki.Table
}

type config struct {
	enc encoding.Encoding
}

// Option configures decoding and encoding.
type Option func(*config)

// WithEncoding transcodes file text through enc. The default is to read
// and write bytes as UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) {
		c.enc = enc
	}
}

// WithShiftJIS reads and writes Shift-JIS text, as produced by the editor
// on Japanese Windows.
func WithShiftJIS() Option {
	return WithEncoding(japanese.ShiftJIS)
}

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Decode parses a PAC file from r.
func Decode(r io.Reader, opts ...Option) (*File, error) {
	cfg := applyOptions(opts)
	if cfg.enc != nil {
		r = transform.NewReader(r, cfg.enc.NewDecoder())
	}

	var (
		head   [HeaderLines]string
		header Header
		rows   []fujisaki.Row
		lineN  int
		err    error
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)
	for sc.Scan() {
		lineN++
		line := sc.Text()
		if lineN == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if lineN <= HeaderLines {
			head[lineN-1] = line
			if lineN == HeaderLines {
				if header, err = parseHeader(head, HeaderLines); err != nil {
					return nil, err
				}
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, lineN, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pac: read: %w", err)
	}

	if lineN < HeaderLines {
		if header, err = parseHeader(head, lineN); err != nil {
			return nil, err
		}
	}
	return &File{Header: header, Commands: fujisaki.NewTable(rows)}, nil
}

func parseRow(fields []string) (fujisaki.Row, error) {
	if len(fields) != 4 {
		return fujisaki.Row{}, fmt.Errorf("want 4 fields (T1 T2 A param), got %d", len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fujisaki.Row{}, fmt.Errorf("field %d %q: %v", i+1, f, err)
		}
		if !core.IsFinite(x) {
			return fujisaki.Row{}, fmt.Errorf("field %d %q: not a finite number", i+1, f)
		}
		v[i] = x
	}
	return fujisaki.Row{Onset: v[0], Offset: v[1], Amplitude: v[2], Param: v[3]}, nil
}

// ReadFile opens and parses the PAC file at path.
func ReadFile(path string, opts ...Option) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh, opts...)
}

// Encode writes f in PAC layout. Rows are written in table order, so a
// decoded file encodes back to the same header values and rows.
func Encode(w io.Writer, f *File, opts ...Option) (err error) {
	if err := f.Header.Validate(); err != nil {
		return err
	}

	cfg := applyOptions(opts)
	if cfg.enc != nil {
		tw := transform.NewWriter(w, cfg.enc.NewEncoder())
		defer func() {
			if cerr := tw.Close(); err == nil {
				err = cerr
			}
		}()
		w = tw
	}

	bw := bufio.NewWriter(w)
	for _, line := range f.Header.render() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	for _, r := range f.Commands.Rows() {
		fmt.Fprintf(bw, "%s %s %s %s\n",
			formatFloat(r.Onset), formatFloat(r.Offset), formatFloat(r.Amplitude), formatFloat(r.Param))
	}
	return bw.Flush()
}

// WriteFile writes f to path, replacing any existing file.
func WriteFile(path string, f *File, opts ...Option) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(fh, f, opts...)
}

// Duration returns the synthesis horizon of f.
func (f *File) Duration() float64 {
	return f.Header.Duration()
}

// PhraseContour synthesizes the phrase component of f with s.
// A nil s uses a default 400 Hz synthesizer.
func (f *File) PhraseContour(s *fujisaki.Synthesizer) ([]float64, error) {
	return orDefault(s).PhraseContour(f.Commands, f.Duration())
}

// AccentContour synthesizes the accent component of f with s.
// A nil s uses a default 400 Hz synthesizer.
func (f *File) AccentContour(s *fujisaki.Synthesizer) ([]float64, error) {
	return orDefault(s).AccentContour(f.Commands, f.Duration())
}

func orDefault(s *fujisaki.Synthesizer) *fujisaki.Synthesizer {
	if s == nil {
		return fujisaki.NewSynthesizer()
	}
	return s
}

// Pitch synthesizes both components with s and reconstructs F0 in Hz.
// A nil s uses a default 400 Hz synthesizer.
func (f *File) Pitch(s *fujisaki.Synthesizer) ([]float64, error) {
	s = orDefault(s)
	phrase, err := f.PhraseContour(s)
	if err != nil {
		return nil, err
	}
	accent, err := f.AccentContour(s)
	if err != nil {
		return nil, err
	}
	return fujisaki.Reconstruct(f.Header.Baseline, accent, phrase)
}

// Baseline returns the baseline Fb of the PAC file at path.
func Baseline(path string, opts ...Option) (float64, error) {
	f, err := ReadFile(path, opts...)
	if err != nil {
		return 0, err
	}
	return f.Header.Baseline, nil
}

// PhraseContour reads path and synthesizes its phrase component at 400 Hz.
func PhraseContour(path string, opts ...Option) ([]float64, error) {
	f, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return f.PhraseContour(nil)
}

// AccentContour reads path and synthesizes its accent component at 400 Hz.
func AccentContour(path string, opts ...Option) ([]float64, error) {
	f, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return f.AccentContour(nil)
}
