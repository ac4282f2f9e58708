// Package colxml implements the column-export XML adapter: a root element
// whose row children carry Column1..ColumnN cells, one row per airing. The
// row element name varies per export, so rows are matched structurally.
package colxml

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// column positions inside each row element
const (
	colDate           = 1 // DD/MM/YYYY
	colStartTime      = 3 // HH:MM:SS
	colTitle          = 4
	colDuration       = 5 // HH:MM:SS elapsed
	colClassification = 6
	colGenre          = 7
	colDescription    = 9
)

// Adapter parses a column-export XML file.
type Adapter struct {
	ChannelID string
}

type row struct {
	cells map[int]string
}

func (r *row) cell(n int) string {
	return strings.TrimSpace(r.cells[n])
}

func (a *Adapter) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	f, err := os.Open(path)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}
	defer f.Close()

	rows, err := decodeRows(f)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}
	if len(rows) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoDataWindow)
	}

	var airings []guide.RawAiring
	for i, r := range rows {
		title := guide.CleanTitle(r.cell(colTitle))
		if title == "" {
			logger.Debug("Skipping row without a title.", zap.Int("row", i))
			continue
		}

		date, err := time.Parse("02/01/2006", r.cell(colDate))
		if err != nil {
			logger.Debug("Skipping row without a valid date.", zap.Int("row", i), zap.Error(err))
			continue
		}

		startSec, err := guide.ParseClock(r.cell(colStartTime))
		if err != nil {
			logger.Debug("Skipping row without a valid start time.", zap.Int("row", i), zap.Error(err))
			continue
		}
		durSec, err := guide.ParseClock(r.cell(colDuration))
		if err != nil {
			logger.Debug("Skipping row without a valid duration.", zap.Int("row", i), zap.Error(err))
			continue
		}

		airings = append(airings, guide.RawAiring{
			ChannelID:      a.ChannelID,
			Title:          title,
			Date:           guide.Date(date.Year(), date.Month(), date.Day()),
			StartTime:      guide.FormatClock(startSec),
			Duration:       time.Duration(durSec) * time.Second,
			Genre:          r.cell(colGenre),
			Classification: r.cell(colClassification),
			Description:    r.cell(colDescription),
		})
	}

	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}

// decodeRows walks the document: depth 1 is the root, every depth-2 element
// is a row, and its ColumnN children are the cells.
func decodeRows(f io.Reader) ([]row, error) {
	decoder := xml.NewDecoder(f)
	decoder.CharsetReader = charset.NewReaderLabel

	var rows []row
	var current *row
	currentCol := 0
	depth := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 2:
				current = &row{cells: make(map[int]string)}
			case 3:
				currentCol = columnIndex(t.Name.Local)
			}
		case xml.EndElement:
			if depth == 2 && current != nil {
				rows = append(rows, *current)
				current = nil
			}
			if depth == 3 {
				currentCol = 0
			}
			depth--
		case xml.CharData:
			if depth == 3 && current != nil && currentCol > 0 {
				current.cells[currentCol] += string(t)
			}
		}
	}
	return rows, nil
}

// columnIndex extracts N from a ColumnN element name, 0 when it is not one.
func columnIndex(name string) int {
	const prefix = "Column"
	if !strings.HasPrefix(name, prefix) {
		return 0
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil || n < 1 {
		return 0
	}
	return n
}
