package sheet

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Grid is a sheet as ordered rows of raw, untyped cell values.
type Grid [][]string

// Cell returns the raw value at col, or "" when the row is shorter.
func (g Grid) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// FindAnchor scans rows top to bottom for the first cell satisfying pred
// that is followed by at least minTrailing non-empty cells in the same row.
// It returns the row and column of the matching cell.
func (g Grid) FindAnchor(pred func(string) bool, minTrailing int) (int, int, bool) {
	for i, row := range g {
		for j, cell := range row {
			if !pred(cell) {
				continue
			}

			trailing := 0
			for k := j + 1; k < len(row) && k <= j+minTrailing; k++ {
				if strings.TrimSpace(row[k]) != "" {
					trailing++
				}
			}
			if trailing >= minTrailing {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// LoadWorkbookSheet reads one sheet of a workbook as a raw cell grid. The
// preferred sheet name is used when present, otherwise the first sheet.
func LoadWorkbookSheet(path, preferred string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	name := sheets[0]
	if preferred != "" && slices.Contains(sheets, preferred) {
		name = preferred
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return Grid(rows), nil
}

// LoadWorkbook reads every sheet of a workbook, preserving sheet order.
func LoadWorkbook(path string) ([]string, map[string]Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	grids := make(map[string]Grid, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, nil, err
		}
		grids[name] = Grid(rows)
	}
	return names, grids, nil
}

// ParseWeekday recognizes a Portuguese weekday cell ("SEGUNDA",
// "Terça-feira", "SÁBADO", ...) in any of the forms the exports use.
func ParseWeekday(cell string) (time.Weekday, bool) {
	s := strings.ToUpper(strings.TrimSpace(cell))
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	s = strings.TrimSuffix(s, "FEIRA")

	switch s {
	case "SEGUNDA":
		return time.Monday, true
	case "TERÇA", "TERCA":
		return time.Tuesday, true
	case "QUARTA":
		return time.Wednesday, true
	case "QUINTA":
		return time.Thursday, true
	case "SEXTA":
		return time.Friday, true
	case "SÁBADO", "SABADO":
		return time.Saturday, true
	case "DOMINGO":
		return time.Sunday, true
	}
	return 0, false
}

// IsWeekday is the sentinel predicate shared by the weekday-anchored layouts.
func IsWeekday(cell string) bool {
	_, ok := ParseWeekday(cell)
	return ok
}

// WeekMonday returns the Monday of ref's week, date only. Weekday-keyed
// layouts carry no dates of their own, so rows are anchored to the current
// week the way the historical converters did.
func WeekMonday(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % 7
	day := ref.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
