package engine

import (
	"time"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
)

// ShiftProgressiveHabits reschedules periodic (times-per-week/month) habits.
// A habit whose period quota is already met loses its shifted date; one
// still short of its target rolls forward to today until completed enough
// times or the period ends. Returns the number of habits changed.
func ShiftProgressiveHabits(habits []*state.Habit, log state.CompletionLog, settings state.Settings, now time.Time) int {
	today := gameclock.GameDay(now, settings.DayStartTime)
	todayStr := gameclock.ISODate(today)

	changed := 0
	for _, h := range habits {
		if h == nil || h.Locked || !h.Frequency.IsPeriodic() {
			continue
		}

		done := completionsInPeriod(log, h, today, settings)
		if done >= h.FreqTimes {
			if h.ShiftedToDate != nil {
				h.ShiftedToDate = nil
				changed++
			}
			continue
		}

		if shiftIsStale(h.ShiftedToDate, today) {
			d := todayStr
			h.ShiftedToDate = &d
			changed++
		}
	}
	return changed
}

// completionsInPeriod counts how often the habit was completed within
// today's week or month, per its frequency.
func completionsInPeriod(log state.CompletionLog, h *state.Habit, today time.Time, settings state.Settings) int {
	periodID := periodIdentifier(h.Frequency, today, settings)

	n := 0
	for dateStr := range log {
		if !log.HabitDone(dateStr, h.ID) {
			continue
		}
		d, err := gameclock.ParseISODate(dateStr)
		if err != nil {
			// Malformed log dates never count, but never abort the pass.
			continue
		}
		if periodIdentifier(h.Frequency, d, settings) == periodID {
			n++
		}
	}
	return n
}

func periodIdentifier(f state.Frequency, d time.Time, settings state.Settings) string {
	if f == state.FrequencyTimesMonth {
		return gameclock.MonthIdentifier(d)
	}
	return gameclock.WeekIdentifier(d, settings.StartsMonday())
}

// shiftIsStale reports whether the shifted date is unset, unparseable, or
// in the past.
func shiftIsStale(shifted *string, today time.Time) bool {
	if shifted == nil {
		return true
	}
	d, err := gameclock.ParseISODate(*shifted)
	if err != nil {
		return true
	}
	return d.Before(today)
}
