package sheet

import (
	"time"

	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// DayBlocks parses the layout where a weekday header row opens each block
// of the week and the rows beneath it hold [start fraction, end fraction,
// title]. Dates come from the Monday of the reference week.
type DayBlocks struct {
	ChannelID string
	SheetName string    // preferred sheet, falls back to the first one
	Reference time.Time // anchor for the target week, zero means now
	// DayColumn is where the weekday header (and the title) live.
	DayColumn int
}

func (a *DayBlocks) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	grid, err := LoadWorkbookSheet(path, a.SheetName)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}

	ref := a.Reference
	if ref.IsZero() {
		ref = time.Now()
	}
	monday := WeekMonday(ref)

	var airings []guide.RawAiring
	haveDay := false
	var date time.Time
	for i, row := range grid {
		cell := grid.Cell(row, a.DayColumn)

		if weekday, ok := ParseWeekday(cell); ok {
			date = monday.AddDate(0, 0, (int(weekday)+6)%7)
			haveDay = true
			continue
		}
		if !haveDay {
			continue
		}

		start, startOK := Numeric(grid.Cell(row, 0))
		stop, stopOK := Numeric(grid.Cell(row, 1))
		title := guide.CleanTitle(cell)
		if !startOK || !stopOK || title == "" || title == "Programa" {
			logger.Debug("Skipping row without usable data.", zap.Int("row", i))
			continue
		}

		airings = append(airings, guide.RawAiring{
			ChannelID: a.ChannelID,
			Title:     title,
			Date:      date,
			StartTime: DecodeDayFraction(start),
			StopTime:  DecodeDayFraction(stop),
		})
	}

	if !haveDay {
		return nil, guide.NewParseError(path, guide.ErrNoDataWindow)
	}
	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}
