package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PACHeader holds the numeric header fields of a PAC fixture.
type PACHeader struct {
	SampleCount    string
	Baseline       string
	SampleDuration string
}

// PACText renders a PAC file: 20 header lines with the numeric fields on
// lines 7, 10 and 11, followed by one "T1 T2 A param" line per row.
func PACText(h PACHeader, rows []string) string {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("# header line %d", i+1)
	}
	lines[6] = h.SampleCount
	lines[9] = h.Baseline
	lines[10] = h.SampleDuration

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	for _, r := range rows {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes content to name under a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ScenarioPAC is the reference PAC file: 800 samples of 5 ms, baseline 100,
// one phrase command at 0.5 s and one accent command over [1.0, 1.2] s.
func ScenarioPAC() string {
	return PACText(
		PACHeader{SampleCount: "800", Baseline: "100.0", SampleDuration: "0.005"},
		[]string{
			"0.5 0.0 0.3 2",
			"1.0 1.2 0.2 20",
		},
	)
}
