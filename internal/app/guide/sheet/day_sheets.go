package sheet

import (
	"time"

	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// DaySheets parses the layout with one sheet tab per weekday, rows of
// [start fraction, duration fraction, title, genre, classification,
// synopsis]. The sheets carry no dates; rows are dated from the Monday of
// the reference week, Sunday closing the week.
type DaySheets struct {
	ChannelID string
	Reference time.Time // anchor for the target week, zero means now
}

func (a *DaySheets) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	names, grids, err := LoadWorkbook(path)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}

	ref := a.Reference
	if ref.IsZero() {
		ref = time.Now()
	}
	monday := WeekMonday(ref)

	var airings []guide.RawAiring
	matched := false
	for _, name := range names {
		weekday, ok := ParseWeekday(name)
		if !ok {
			logger.Debug("Skipping sheet without a weekday name.", zap.String("sheet", name))
			continue
		}
		matched = true
		date := monday.AddDate(0, 0, (int(weekday)+6)%7)

		grid := grids[name]
		for i, row := range grid {
			if i == 0 {
				// column header row
				continue
			}

			start, startOK := Numeric(grid.Cell(row, 0))
			duration, durOK := Numeric(grid.Cell(row, 1))
			title := guide.CleanTitle(grid.Cell(row, 2))
			if !startOK || !durOK || title == "" {
				continue
			}

			airings = append(airings, guide.RawAiring{
				ChannelID:      a.ChannelID,
				Title:          title,
				Date:           date,
				StartTime:      DecodeDayFraction(start),
				Duration:       DecodeFractionDuration(duration),
				Genre:          guide.CleanTitle(grid.Cell(row, 3)),
				Classification: guide.CleanTitle(grid.Cell(row, 4)),
				Description:    guide.CleanTitle(grid.Cell(row, 5)),
			})
		}
	}

	if !matched {
		return nil, guide.NewParseError(path, guide.ErrNoDataWindow)
	}
	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}
