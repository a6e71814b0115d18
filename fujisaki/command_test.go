package fujisaki

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want Kind
	}{
		{name: "phrase", row: Row{Onset: 0.5, Amplitude: 0.3, Param: 2}, want: KindPhrase},
		{name: "accent", row: Row{Onset: 1, Offset: 1.2, Amplitude: 0.2, Param: 20}, want: KindAccent},
		{name: "other code", row: Row{Onset: 0, Offset: 0, Amplitude: 1, Param: 7}, want: KindUnrecognized},
		{name: "near code", row: Row{Param: 2.5}, want: KindUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.row)
			if c.Kind() != tt.want {
				t.Fatalf("Kind() = %v, want %v", c.Kind(), tt.want)
			}
			if c.Row() != tt.row {
				t.Fatalf("Row() = %+v, want %+v", c.Row(), tt.row)
			}
		})
	}
}

func TestClassifyFields(t *testing.T) {
	p, ok := Classify(Row{Onset: 0.5, Offset: 9, Amplitude: 0.3, Param: PhraseCode}).(Phrase)
	if !ok {
		t.Fatal("expected Phrase")
	}
	if p.Onset != 0.5 || p.Amplitude != 0.3 || p.Alpha != 2 {
		t.Fatalf("phrase = %+v", p)
	}

	a, ok := Classify(Row{Onset: 1, Offset: 1.2, Amplitude: 0.2, Param: AccentCode}).(Accent)
	if !ok {
		t.Fatal("expected Accent")
	}
	if a.Onset != 1 || a.Offset != 1.2 || a.Amplitude != 0.2 || a.Beta != 20 {
		t.Fatalf("accent = %+v", a)
	}
}

func TestTableOrderAndFilter(t *testing.T) {
	rows := []Row{
		{Onset: 1, Offset: 1.2, Amplitude: 0.2, Param: 20},
		{Onset: 0, Amplitude: 0.5, Param: 2},
		{Onset: 3, Amplitude: 1, Param: 99},
		{Onset: 2, Offset: 2.3, Amplitude: 0.1, Param: 20},
	}
	table := NewTable(rows)

	got := table.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}

	if n := len(table.Filter(KindUnrecognized)); n != 1 {
		t.Fatalf("unrecognized = %d, want 1", n)
	}
	accents := table.Accents()
	if len(accents) != 2 || accents[0].Onset != 1 || accents[1].Onset != 2 {
		t.Fatalf("accents = %+v", accents)
	}
	if phrases := table.Phrases(); len(phrases) != 1 || phrases[0].Amplitude != 0.5 {
		t.Fatalf("phrases = %+v", phrases)
	}
}

func TestNewCommandRows(t *testing.T) {
	if got := NewPhrase(0.5, 0.3).Row(); got != (Row{Onset: 0.5, Amplitude: 0.3, Param: 2}) {
		t.Fatalf("phrase row = %+v", got)
	}
	if got := NewAccent(1, 1.2, 0.2).Row(); got != (Row{Onset: 1, Offset: 1.2, Amplitude: 0.2, Param: 20}) {
		t.Fatalf("accent row = %+v", got)
	}
}

func TestKindString(t *testing.T) {
	if KindPhrase.String() != "phrase" || KindAccent.String() != "accent" || KindUnrecognized.String() != "unrecognized" {
		t.Fatal("unexpected kind names")
	}
}
