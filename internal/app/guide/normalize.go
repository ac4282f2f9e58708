package guide

import (
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultMinDurationMinutes is the canonical minimum block length.
const DefaultMinDurationMinutes = 30

// exact-midnight stops are rewritten to this before any duration math,
// otherwise a 00:00:00 stop would produce a zero-length or wrapped block.
const endOfDayStop = "23:59:00"

// NormalizeOptions tunes the schedule normalizer.
type NormalizeOptions struct {
	// MinDurationMinutes drops airings shorter than this many minutes.
	// Zero disables the filter (the historical send-everything behavior).
	MinDurationMinutes int
}

type programKey struct {
	channelID string
	title     string
}

// Normalize turns raw airings into per-program weekly recurrence blocks.
//
// Airings are grouped by (channel, title) preserving first-seen order. For
// each airing the stop time is resolved (explicit stop, or start plus
// duration), a literal "00:00:00" stop is clamped to "23:59:00", negative
// spans are reinterpreted as crossing midnight into the following calendar
// day, and blocks below the minimum duration are discarded. Programs whose
// every airing is discarded are omitted entirely.
//
// The weekday keys of RecurrenceBlock.Days follow time.Weekday numbering,
// Sunday=0 through Saturday=6.
func Normalize(airings []RawAiring, opts NormalizeOptions) []ProgramSchedule {
	logger := zap.L()

	order := make([]programKey, 0)
	grouped := make(map[programKey][]RawAiring)
	for _, a := range airings {
		title := CleanTitle(a.Title)
		if title == "" {
			logger.Debug("Skipping airing without a title.", zap.Time("date", a.Date))
			continue
		}
		a.Title = title

		key := programKey{channelID: a.ChannelID, title: title}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], a)
	}

	schedules := make([]ProgramSchedule, 0, len(order))
	for _, key := range order {
		program := ProgramSchedule{
			ChannelID:   key.channelID,
			Name:        key.title,
			Description: "",
		}

		for _, a := range grouped[key] {
			if program.Description == "" && a.Description != "" {
				program.Description = a.Description
			}
			if program.ImageURL == "" && a.ImageURL != "" {
				program.ImageURL = a.ImageURL
			}

			block, durSec, err := buildBlock(a)
			if err != nil {
				logger.Warn("Skipping airing with unusable times.",
					zap.String("program", key.title),
					zap.Time("date", a.Date),
					zap.Error(err))
				continue
			}

			if opts.MinDurationMinutes > 0 && durSec <= (opts.MinDurationMinutes-1)*60 {
				logger.Info("Airing discarded below the minimum duration.",
					zap.String("program", key.title),
					zap.Time("date", a.Date),
					zap.Int("durationMinutes", durSec/60),
					zap.Int("minDurationMinutes", opts.MinDurationMinutes))
				continue
			}

			program.Schedule = append(program.Schedule, block)
		}

		if len(program.Schedule) == 0 {
			continue
		}
		schedules = append(schedules, program)
	}
	return schedules
}

// buildBlock resolves one airing into a recurrence block and its duration
// in seconds.
func buildBlock(a RawAiring) (RecurrenceBlock, int, error) {
	startSec, err := ParseClock(a.StartTime)
	if err != nil {
		return RecurrenceBlock{}, 0, err
	}

	stopTime := a.StopTime
	if stopTime == "" {
		// resolve an explicit duration into a wall-clock stop; spans past
		// midnight wrap and are picked up by the crossing branch below
		stopTime = FormatClock((startSec + int(a.Duration.Seconds())) % secondsPerDay)
	}
	if stopTime == "00:00:00" {
		stopTime = endOfDayStop
	}
	stopSec, err := ParseClock(stopTime)
	if err != nil {
		return RecurrenceBlock{}, 0, err
	}

	startDate := a.Date
	endDate := a.Date
	weekday := int(a.Date.Weekday())

	days := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		days[strconv.Itoa(i)] = false
	}
	days[strconv.Itoa(weekday)] = true

	durSec := stopSec - startSec
	if durSec < 0 {
		// crosses midnight: the stop belongs to the following calendar day
		durSec += secondsPerDay
		endDate = startDate.AddDate(0, 0, 1)
		days[strconv.Itoa((weekday+1)%7)] = true
	}

	block := RecurrenceBlock{
		StartDate: startDate.Format(wireDateLayout),
		EndDate:   endDate.Format(wireDateLayout),
		Available: true,
		TimeStart: formatHHMM(startSec),
		TimeEnd:   formatHHMM(stopSec),
		Days:      days,
	}
	return block, durSec, nil
}

// Date builds a calendar date with a zero time part.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
