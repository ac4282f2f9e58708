package sheet

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		cell   string
		want   time.Weekday
		wantOK bool
	}{
		{cell: "SEGUNDA", want: time.Monday, wantOK: true},
		{cell: "Segunda-feira", want: time.Monday, wantOK: true},
		{cell: "SEGUNDA - FEIRA", want: time.Monday, wantOK: true},
		{cell: "TERÇA", want: time.Tuesday, wantOK: true},
		{cell: "terca-feira", want: time.Tuesday, wantOK: true},
		{cell: "QUARTA-FEIRA", want: time.Wednesday, wantOK: true},
		{cell: "Quinta", want: time.Thursday, wantOK: true},
		{cell: "SEXTA", want: time.Friday, wantOK: true},
		{cell: "SÁBADO", want: time.Saturday, wantOK: true},
		{cell: "sabado", want: time.Saturday, wantOK: true},
		{cell: "DOMINGO", want: time.Sunday, wantOK: true},
		{cell: "PROGRAMA", wantOK: false},
		{cell: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, ok := ParseWeekday(tt.cell)
			if ok != tt.wantOK {
				t.Fatalf("ParseWeekday(%q) ok = %v, want %v", tt.cell, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestWeekMonday(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "wednesday rewinds to monday",
			ref:  time.Date(2024, time.March, 6, 15, 30, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday stays put",
			ref:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the week before",
			ref:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekMonday(tt.ref); !got.Equal(tt.want) {
				t.Errorf("WeekMonday(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestGridCell(t *testing.T) {
	g := Grid{{"a", "b"}}
	row := g[0]

	if got := g.Cell(row, 1); got != "b" {
		t.Errorf("Cell(row, 1) = %q, want %q", got, "b")
	}
	if got := g.Cell(row, 5); got != "" {
		t.Errorf("Cell(row, 5) = %q, want empty for a short row", got)
	}
	if got := g.Cell(row, -1); got != "" {
		t.Errorf("Cell(row, -1) = %q, want empty", got)
	}
}

func TestGridFindAnchor(t *testing.T) {
	g := Grid{
		{"GRADE MENSAL"},
		{"", "SEGUNDA", "", ""},
		{"SEGUNDA", "45357", "0.5", "Jornal"},
	}

	row, col, ok := g.FindAnchor(IsWeekday, 3)
	if !ok {
		t.Fatal("FindAnchor() found no anchor")
	}
	// the row 1 weekday lacks trailing data and must be skipped
	if row != 2 || col != 0 {
		t.Errorf("FindAnchor() = (%d, %d), want (2, 0)", row, col)
	}

	if _, _, ok = g.FindAnchor(func(string) bool { return false }, 1); ok {
		t.Error("FindAnchor() with an unsatisfiable predicate reported a match")
	}
}
