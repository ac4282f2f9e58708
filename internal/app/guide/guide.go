package guide

import (
	"strings"
	"time"
)

// RawAiring is one observed broadcast event extracted from a source file.
// Exactly one of StopTime or Duration is populated; the normalizer resolves
// either into an absolute stop time. Dates are kept in the source's local
// timezone, no conversion is performed.
type RawAiring struct {
	ChannelID      string        `json:"channelId,omitempty"` // present only for multi-channel feeds
	Title          string        `json:"title"`
	Date           time.Time     `json:"date"`               // broadcast date, time part zero
	StartTime      string        `json:"startTime"`          // HH:MM:SS
	StopTime       string        `json:"stopTime,omitempty"` // HH:MM:SS, empty when Duration is set
	Duration       time.Duration `json:"duration,omitempty"` // elapsed time, alternative to StopTime
	Description    string        `json:"description,omitempty"`
	Genre          string        `json:"genre,omitempty"`
	Classification string        `json:"classification,omitempty"`
	ImageURL       string        `json:"imageUrl,omitempty"`
	Actors         string        `json:"actors,omitempty"`    // joined by ", ", audit dump only
	Directors      string        `json:"directors,omitempty"` // joined by ", ", audit dump only
}

// RecurrenceBlock is one weekly-recurring time window in the CMS wire shape.
type RecurrenceBlock struct {
	StartDate string          `json:"start_date"` // DD-MM-YYYY
	EndDate   string          `json:"end_date"`   // DD-MM-YYYY, equals StartDate unless the block crosses midnight
	Available bool            `json:"available"`  // always true, reserved for soft-delete
	TimeStart string          `json:"time_start"` // HH:MM, seconds truncated
	TimeEnd   string          `json:"time_end"`   // HH:MM
	Days      map[string]bool `json:"days"`       // weekday keys "0".."6", Sunday=0
}

// ProgramSchedule is the normalized output unit, one per (channel, title)
// pair with at least one surviving recurrence block.
type ProgramSchedule struct {
	ChannelID   string            `json:"channel_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url,omitempty"`
	Schedule    []RecurrenceBlock `json:"schedule"`
}

const wireDateLayout = "02-01-2006"

// CleanTitle trims a raw program title cell and collapses internal
// whitespace runs left over from merged cells.
func CleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
