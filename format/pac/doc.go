// Package pac reads and writes FujiParaEditor parameter (.PAC) files.
//
// A PAC file is a 20-line fixed-layout header followed by a command table:
//
//	line 1-6    structural text
//	line 7      sample count (integer)
//	line 8-9    structural text
//	line 10     baseline Fb (Hz)
//	line 11     sample duration (s)
//	line 12-20  structural text
//	line 21+    T1 T2 A param, whitespace separated
//
// Rows are classified into phrase, accent and unrecognized commands by
// [fujisaki.Classify] while parsing. The editor runs on Japanese Windows, so
// header text may be Shift-JIS; use [WithShiftJIS] to transcode it.
//
// # Usage
//
//	f, err := pac.ReadFile("utt01.PAC")
//	pitch, err := f.Pitch(fujisaki.NewSynthesizer())
package pac
