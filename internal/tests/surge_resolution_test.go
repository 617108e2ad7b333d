package tests

import (
	"testing"

	"fare/internal/domain"
	"fare/internal/service"
)

func surgeConfig(slots ...domain.SurgeSlot) *domain.PriceConfiguration {
	return &domain.PriceConfiguration{
		ID:             "cfg-surge",
		ServiceTypeID:  "st-sedan",
		CityID:         "city-1",
		BusinessStatus: true,
		IsSurgeHours:   true,
		SurgeTimes:     slots,
	}
}

func TestResolveSurgeMultiplier(t *testing.T) {
	t.Parallel()

	morningRush := domain.SurgeSlot{
		Day:         domain.WeekdayMon,
		StartMinute: 8 * 60,
		EndMinute:   10 * 60,
		Multiplier:  1.5,
	}

	testCases := []struct {
		name     string
		cfg      *domain.PriceConfiguration
		day      domain.Weekday
		minute   int
		expected float64
	}{
		{
			name:     "inside slot",
			cfg:      surgeConfig(morningRush),
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 1.5,
		},
		{
			name:     "outside slot",
			cfg:      surgeConfig(morningRush),
			day:      domain.WeekdayMon,
			minute:   11 * 60,
			expected: 1.0,
		},
		{
			name:     "wrong day",
			cfg:      surgeConfig(morningRush),
			day:      domain.WeekdayTue,
			minute:   9 * 60,
			expected: 1.0,
		},
		{
			name:     "start boundary is inclusive",
			cfg:      surgeConfig(morningRush),
			day:      domain.WeekdayMon,
			minute:   8 * 60,
			expected: 1.5,
		},
		{
			name:     "end boundary is exclusive",
			cfg:      surgeConfig(morningRush),
			day:      domain.WeekdayMon,
			minute:   10 * 60,
			expected: 1.0,
		},
		{
			name: "overlapping slots take the highest multiplier",
			cfg: surgeConfig(
				morningRush,
				domain.SurgeSlot{Day: domain.WeekdayMon, StartMinute: 9 * 60, EndMinute: 11 * 60, Multiplier: 2.0},
			),
			day:      domain.WeekdayMon,
			minute:   9*60 + 30,
			expected: 2.0,
		},
		{
			name: "overlap order does not matter",
			cfg: surgeConfig(
				domain.SurgeSlot{Day: domain.WeekdayMon, StartMinute: 9 * 60, EndMinute: 11 * 60, Multiplier: 2.0},
				morningRush,
			),
			day:      domain.WeekdayMon,
			minute:   9*60 + 30,
			expected: 2.0,
		},
		{
			name:     "empty schedule",
			cfg:      surgeConfig(),
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 1.0,
		},
		{
			name: "surge flag off disables the whole schedule",
			cfg: func() *domain.PriceConfiguration {
				cfg := surgeConfig(morningRush)
				cfg.IsSurgeHours = false
				return cfg
			}(),
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 1.0,
		},
		{
			name:     "nil configuration",
			cfg:      nil,
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 1.0,
		},
		{
			name: "single sub-unit slot returns its multiplier",
			cfg: surgeConfig(
				domain.SurgeSlot{Day: domain.WeekdayMon, StartMinute: 8 * 60, EndMinute: 10 * 60, Multiplier: 0.8},
			),
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 0.8,
		},
		{
			name: "highest wins among matching sub-unit slots",
			cfg: surgeConfig(
				domain.SurgeSlot{Day: domain.WeekdayMon, StartMinute: 8 * 60, EndMinute: 10 * 60, Multiplier: 0.6},
				domain.SurgeSlot{Day: domain.WeekdayMon, StartMinute: 8 * 60, EndMinute: 10 * 60, Multiplier: 0.8},
			),
			day:      domain.WeekdayMon,
			minute:   9 * 60,
			expected: 0.8,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := service.ResolveSurgeMultiplier(tc.cfg, tc.day, tc.minute)
			if got != tc.expected {
				t.Errorf("expected multiplier %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSurgeSlotMatches(t *testing.T) {
	t.Parallel()

	slot := domain.SurgeSlot{
		Day:         domain.WeekdaySat,
		StartMinute: 22 * 60,
		EndMinute:   24 * 60,
		Multiplier:  2.0,
	}

	if !slot.Matches(domain.WeekdaySat, 23*60+59) {
		t.Error("expected 23:59 to match a slot ending at midnight")
	}
	if slot.Matches(domain.WeekdaySun, 0) {
		t.Error("expected the following day's midnight not to match")
	}
}
