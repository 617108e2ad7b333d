package service

import (
	"fare/internal/domain"
)

// ResolveSurgeMultiplier returns the surge multiplier for a request made on
// the given local day and minute-of-day.
//
// Surge never applies when the configuration's surge hours flag is off, and
// an absent or empty schedule simply means no surge (1.0). A single matching
// slot contributes its multiplier as-is, sub-unit values included; the
// minimum fare floor downstream is what guards against under-charging. When
// overlapping slots match the same instant the highest multiplier wins, and
// the order slots were authored in carries no meaning.
func ResolveSurgeMultiplier(cfg *domain.PriceConfiguration, day domain.Weekday, minuteOfDay int) float64 {
	if cfg == nil || !cfg.IsSurgeHours {
		return 1.0
	}

	matched := false
	multiplier := 0.0
	for _, slot := range cfg.SurgeTimes {
		if slot.Matches(day, minuteOfDay) && slot.Multiplier > multiplier {
			matched = true
			multiplier = slot.Multiplier
		}
	}

	if !matched {
		return 1.0
	}
	return multiplier
}

// validWeekdays is the accepted day vocabulary for surge slots.
var validWeekdays = map[domain.Weekday]bool{
	domain.WeekdayMon: true,
	domain.WeekdayTue: true,
	domain.WeekdayWed: true,
	domain.WeekdayThu: true,
	domain.WeekdayFri: true,
	domain.WeekdaySat: true,
	domain.WeekdaySun: true,
}

// validateSurgeSlots checks every slot of a candidate configuration. Slots
// must use a known day, parseable times with start before end, and a positive
// multiplier. Midnight-spanning windows must arrive already split in two.
func validateSurgeSlots(slots []domain.SurgeSlot) error {
	for i, slot := range slots {
		if !validWeekdays[slot.Day] {
			return &ValidationError{
				Field:  fieldAt("surge_times", i, "day"),
				Reason: "unknown day " + string(slot.Day),
			}
		}
		if slot.StartMinute < 0 || slot.StartMinute >= minutesPerDay {
			return &ValidationError{
				Field:  fieldAt("surge_times", i, "start_time"),
				Reason: "outside 00:00-23:59",
			}
		}
		if slot.EndMinute <= 0 || slot.EndMinute > minutesPerDay {
			return &ValidationError{
				Field:  fieldAt("surge_times", i, "end_time"),
				Reason: "outside 00:01-24:00",
			}
		}
		if slot.StartMinute >= slot.EndMinute {
			return &ValidationError{
				Field:  fieldAt("surge_times", i, "start_time"),
				Reason: "must be before end_time; slots may not span midnight",
			}
		}
		if slot.Multiplier <= 0 {
			return &ValidationError{
				Field:  fieldAt("surge_times", i, "multiplier"),
				Reason: "must be positive",
			}
		}
	}
	return nil
}

const minutesPerDay = 24 * 60
