package fujisaki

// Kind codes used in the param column of a command table. The code of a
// phrase or accent row is also its response rate in 1/s.
const (
	PhraseCode = 2
	AccentCode = 20
)

// Kind identifies a command variant.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindPhrase
	KindAccent
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPhrase:
		return "phrase"
	case KindAccent:
		return "accent"
	default:
		return "unrecognized"
	}
}

// Row is one raw command-table row: T1 T2 A param.
type Row struct {
	Onset     float64 // T1, seconds
	Offset    float64 // T2, seconds; meaningful for accent rows only
	Amplitude float64 // A
	Param     float64 // kind code
}

// Command is a classified command-table row. The variants are [Phrase],
// [Accent] and [Unrecognized].
type Command interface {
	Kind() Kind
	// Row returns the raw row the command was classified from.
	Row() Row
	command()
}

// Phrase is a phrase command. It has no offset.
type Phrase struct {
	Onset     float64
	Amplitude float64
	Alpha     float64
	// t2 keeps the unused T2 column for round-trips.
	t2 float64
}

// Accent is an accent command spanning [Onset, Offset].
type Accent struct {
	Onset     float64
	Offset    float64
	Amplitude float64
	Beta      float64
}

// Unrecognized is a row whose code is neither PhraseCode nor AccentCode.
// It is retained for round-trips and ignored by synthesis.
type Unrecognized struct {
	Raw Row
}

func (Phrase) Kind() Kind       { return KindPhrase }
func (Accent) Kind() Kind       { return KindAccent }
func (Unrecognized) Kind() Kind { return KindUnrecognized }

func (c Phrase) Row() Row {
	return Row{Onset: c.Onset, Offset: c.t2, Amplitude: c.Amplitude, Param: c.Alpha}
}

func (c Accent) Row() Row {
	return Row{Onset: c.Onset, Offset: c.Offset, Amplitude: c.Amplitude, Param: c.Beta}
}

func (c Unrecognized) Row() Row { return c.Raw }

func (Phrase) command()       {}
func (Accent) command()       {}
func (Unrecognized) command() {}

// Classify maps a raw row to its command variant.
func Classify(r Row) Command {
	switch r.Param {
	case PhraseCode:
		return Phrase{Onset: r.Onset, Amplitude: r.Amplitude, Alpha: r.Param, t2: r.Offset}
	case AccentCode:
		return Accent{Onset: r.Onset, Offset: r.Offset, Amplitude: r.Amplitude, Beta: r.Param}
	default:
		return Unrecognized{Raw: r}
	}
}

// NewPhrase builds a phrase command with the standard rate.
func NewPhrase(onset, amplitude float64) Phrase {
	return Phrase{Onset: onset, Amplitude: amplitude, Alpha: PhraseCode}
}

// NewAccent builds an accent command with the standard rate.
func NewAccent(onset, offset, amplitude float64) Accent {
	return Accent{Onset: onset, Offset: offset, Amplitude: amplitude, Beta: AccentCode}
}

// Table is an ordered command sequence in file row order.
type Table []Command

// NewTable classifies rows in order.
func NewTable(rows []Row) Table {
	t := make(Table, len(rows))
	for i, r := range rows {
		t[i] = Classify(r)
	}
	return t
}

// Rows returns the raw rows in order.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t))
	for i, c := range t {
		rows[i] = c.Row()
	}
	return rows
}

// Filter returns the commands of the given kind, preserving order.
func (t Table) Filter(kind Kind) Table {
	var out Table
	for _, c := range t {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Phrases returns the phrase commands in order.
func (t Table) Phrases() []Phrase {
	var out []Phrase
	for _, c := range t {
		if p, ok := c.(Phrase); ok {
			out = append(out, p)
		}
	}
	return out
}

// Accents returns the accent commands in order.
func (t Table) Accents() []Accent {
	var out []Accent
	for _, c := range t {
		if a, ok := c.(Accent); ok {
			out = append(out, a)
		}
	}
	return out
}
