package sheet

import (
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// headerTitle marks repeated in-sheet header rows in several exports.
const headerTitle = "PROGRAMA"

// WeekdayRows parses the layout where each data row starts with a weekday
// name followed by [serial date, start fraction, title, genre,
// classification]. The data window is located by scanning for the weekday
// sentinel; a row's stop time is the next row's start when both rows share
// a weekday, otherwise end of day.
type WeekdayRows struct {
	ChannelID string
	SheetName string // preferred sheet, falls back to the first one
}

func (a *WeekdayRows) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	grid, err := LoadWorkbookSheet(path, a.SheetName)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}

	_, col, ok := grid.FindAnchor(IsWeekday, 3)
	if !ok {
		return nil, guide.NewParseError(path, guide.ErrNoDataWindow)
	}

	var airings []guide.RawAiring
	for i, row := range grid {
		if !IsWeekday(grid.Cell(row, col)) {
			// banner or blank row above/between the data
			continue
		}

		dateCell := grid.Cell(row, col+1)
		startCell := grid.Cell(row, col+2)
		title := guide.CleanTitle(grid.Cell(row, col+3))

		serial, dateOK := Numeric(dateCell)
		start, startOK := Numeric(startCell)
		if !dateOK || !startOK || title == "" || title == headerTitle {
			logger.Debug("Skipping row without usable data.", zap.Int("row", i))
			continue
		}

		// the stop time comes from the next row's start, but only within
		// the same program-day; at a day boundary the block runs out the day
		stopTime := "23:59:59"
		if i+1 < len(grid) {
			next := grid[i+1]
			nextStart, nextOK := Numeric(grid.Cell(next, col+2))
			if nextOK && grid.Cell(next, col) == grid.Cell(row, col) {
				stopTime = DecodeDayFraction(nextStart)
			}
		}

		airings = append(airings, guide.RawAiring{
			ChannelID:      a.ChannelID,
			Title:          title,
			Date:           DecodeSerialDate(serial),
			StartTime:      DecodeDayFraction(start),
			StopTime:       stopTime,
			Genre:          guide.CleanTitle(grid.Cell(row, col+4)),
			Classification: guide.CleanTitle(grid.Cell(row, col+5)),
		})
	}

	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}
