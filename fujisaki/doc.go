// Package fujisaki implements forward synthesis of the Fujisaki
// superpositional model of speech fundamental frequency.
//
// The model writes log F0 as a speaker baseline plus two components:
//
//   - phrase component: a sum of critically damped second-order impulse
//     responses [Gp], one per phrase command
//   - accent component: a sum of clipped step-response pairs [Ga], one
//     rise at the accent onset and one fall at its offset
//
// # Usage
//
//	s := fujisaki.NewSynthesizer() // 400 Hz
//	phrase, err := s.PhraseContour(table, tMax)
//	accent, err := s.AccentContour(table, tMax)
//	pitch, err := fujisaki.Reconstruct(baseline, accent, phrase)
//
// Commands are classified once with [Classify] into [Phrase], [Accent] or
// [Unrecognized]. The raw kind code of a row also serves as the response
// rate: phrase rows carry alpha = 2/s and accent rows beta = 20/s.
package fujisaki
