package engine

import (
	"time"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
)

// CompletionPercentageForDate returns the fraction (0-100) of applicable
// items completed on the given game day. Applicable means: unlocked daily
// habits that already existed on that date, plus periodic habits shifted to
// exactly that date. A day with nothing applicable scores 0.
func CompletionPercentageForDate(doc *state.Document, date time.Time) float64 {
	dateStr := gameclock.ISODate(date)

	applicable := 0
	done := 0
	for _, h := range doc.Habits {
		if h == nil || h.Locked {
			continue
		}
		if !h.CreatedAt.IsZero() {
			created := gameclock.GameDay(h.CreatedAt, doc.Settings.DayStartTime)
			if created.After(date) {
				continue
			}
		}

		switch {
		case h.Daily():
			applicable++
		case h.ShiftedToDate != nil && *h.ShiftedToDate == dateStr:
			applicable++
		default:
			continue
		}
		if doc.CompletionLog.HabitDone(dateStr, h.ID) {
			done++
		}
	}

	if applicable == 0 {
		return 0
	}
	return 100 * float64(done) / float64(applicable)
}
