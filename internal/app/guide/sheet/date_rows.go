package sheet

import (
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// DateRows parses the layout with a date in the first column followed by
// [start fraction, duration fraction, title, description-or-genre,
// classification, synopsis]. Dates may be serial numbers or preformatted
// DD/MM/YYYY strings.
type DateRows struct {
	ChannelID string
	// HasDescription selects whether the fifth column carries the program
	// description (true) or a genre label (false); the exports disagree.
	HasDescription bool
}

func (a *DateRows) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	grid, err := LoadWorkbookSheet(path, "")
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}

	var airings []guide.RawAiring
	for i, row := range grid {
		if i == 0 {
			// column header row
			continue
		}

		date, dateOK := DecodeDate(grid.Cell(row, 0))
		if !dateOK {
			logger.Debug("Skipping row without a valid date.", zap.Int("row", i))
			continue
		}

		start, startOK := Numeric(grid.Cell(row, 1))
		duration, durOK := Numeric(grid.Cell(row, 2))
		title := guide.CleanTitle(grid.Cell(row, 3))
		if !startOK || !durOK || title == "" {
			continue
		}

		airing := guide.RawAiring{
			ChannelID:      a.ChannelID,
			Title:          title,
			Date:           date,
			StartTime:      DecodeDayFraction(start),
			Duration:       DecodeFractionDuration(duration),
			Classification: guide.CleanTitle(grid.Cell(row, 5)),
		}
		if a.HasDescription {
			airing.Description = guide.CleanTitle(grid.Cell(row, 4))
		} else {
			airing.Genre = guide.CleanTitle(grid.Cell(row, 4))
		}
		airings = append(airings, airing)
	}

	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}
