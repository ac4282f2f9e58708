package guide

import (
	"fmt"
	"strconv"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// ParseClock converts "HH:MM:SS" (or "HH:MM") to seconds since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value: %q", s)
	}

	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if i >= len(parts) {
			break
		}
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid clock value: %q", s)
		}
		total += v * unit
	}
	if total >= secondsPerDay {
		return 0, fmt.Errorf("clock value out of range: %q", s)
	}
	return total, nil
}

// FormatClock renders seconds since midnight as "HH:MM:SS".
func FormatClock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}

// formatHHMM renders seconds since midnight as "HH:MM", dropping seconds.
func formatHHMM(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/3600, sec%3600/60)
}
