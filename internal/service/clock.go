package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" local time-of-day into minutes after
// midnight. "24:00" is accepted as an exclusive slot end.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("malformed clock time %q, want HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q, want HH:MM", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q, want HH:MM", s)
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// fieldAt names a field inside a repeated payload section, e.g.
// surge_times[2].multiplier.
func fieldAt(section string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", section, index, field)
}
