// Package sheet implements the spreadsheet source adapters. Every layout
// variant shares one engine: a raw cell grid, a sentinel scan that locates
// the data window, and cell decoders for the serial-number date and
// fraction-of-day time conventions of common spreadsheet exports.
package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// 1900-epoch day offset between spreadsheet serial dates and the Unix epoch.
const serialEpochOffset = 25569

// Numeric reports whether a raw cell holds a number and returns its value.
func Numeric(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DecodeSerialDate converts a spreadsheet day-count serial to a calendar
// date. The serial is shifted by -25569 days onto the Unix epoch, then one
// day is added to correct the off-by-one drift observed in real exports.
func DecodeSerialDate(serial float64) time.Time {
	unix := int64((serial - serialEpochOffset) * 86400)
	t := time.Unix(unix, 0).UTC().AddDate(0, 0, 1)
	return guide.Date(t.Year(), t.Month(), t.Day())
}

// DecodeDate accepts either a numeric serial cell or a preformatted
// DD/MM/YYYY string.
func DecodeDate(cell string) (time.Time, bool) {
	if serial, ok := Numeric(cell); ok {
		return DecodeSerialDate(serial), true
	}
	t, err := time.Parse("02/01/2006", strings.TrimSpace(cell))
	if err != nil {
		return time.Time{}, false
	}
	return guide.Date(t.Year(), t.Month(), t.Day()), true
}

// DecodeDayFraction converts a fraction-of-day cell to "HH:MM:SS". The
// fraction is rounded to whole minutes; exactly 0 and exactly 1 both mean
// midnight, and hours past 24 wrap around.
func DecodeDayFraction(v float64) string {
	if v == 0 || v == 1 {
		return "00:00:00"
	}

	totalMinutes := int(math.Round(v * 24 * 60))
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours >= 24 {
		hours = hours % 24
	}
	return guide.FormatClock(hours*3600 + minutes*60)
}

// DecodeTime accepts either a numeric fraction-of-day cell or a
// preformatted clock string, returning "HH:MM:SS".
func DecodeTime(cell string) (string, bool) {
	if v, ok := Numeric(cell); ok {
		return DecodeDayFraction(v), true
	}
	sec, err := guide.ParseClock(cell)
	if err != nil {
		return "", false
	}
	return guide.FormatClock(sec), true
}

// DecodeFractionDuration converts a fraction-of-day cell to an elapsed
// duration rounded to whole minutes.
func DecodeFractionDuration(v float64) time.Duration {
	return time.Duration(math.Round(v*24*60)) * time.Minute
}
