package engine

import (
	"time"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
)

const (
	// maxScanDays bounds every backward log scan so corrupt or ancient
	// logs cannot hang a repair pass.
	maxScanDays = 1000

	// globalStreakThreshold is the completion percentage a day needs to
	// count toward the global streak.
	globalStreakThreshold = 70.0

	// graceHour: before noon, streak resets are deferred so yesterday's
	// habits can still be logged without penalty.
	graceHour = 12
)

// ResetDailyStreaks zeroes the streak of every eligible daily habit that
// was not completed yesterday. It is a no-op during the morning grace
// period. Returns the number of habits changed.
func ResetDailyStreaks(habits []*state.Habit, log state.CompletionLog, settings state.Settings, now time.Time) int {
	if now.Hour() < graceHour {
		return 0
	}

	today := gameclock.GameDay(now, settings.DayStartTime)
	yesterday := today.AddDate(0, 0, -1)
	yesterdayStr := gameclock.ISODate(yesterday)

	changed := 0
	for _, h := range habits {
		if h == nil || h.Locked || !h.Daily() {
			continue
		}
		// A habit created after yesterday had no yesterday obligation.
		if !h.CreatedAt.IsZero() {
			created := gameclock.GameDay(h.CreatedAt, settings.DayStartTime)
			if created.After(yesterday) {
				continue
			}
		}
		if !log.HabitDone(yesterdayStr, h.ID) && h.Streak > 0 {
			h.Streak = 0
			changed++
		}
	}
	return changed
}

// RepairStreaks recomputes every eligible daily habit's streak from scratch
// by scanning the completion log backward from today. The log is never
// mutated, and running the pass twice without log changes reports zero
// further fixes. Returns the number of habits corrected.
func RepairStreaks(habits []*state.Habit, log state.CompletionLog, settings state.Settings, now time.Time) int {
	today := gameclock.GameDay(now, settings.DayStartTime)

	changed := 0
	for _, h := range habits {
		if h == nil || h.Locked || !h.Daily() {
			continue
		}
		streak := rebuildStreak(log, h.ID, today)
		if streak != h.Streak {
			h.Streak = streak
			changed++
		}
	}
	return changed
}

// rebuildStreak counts consecutive completed days ending at today. An
// incomplete today is not a gap: the day is still in progress, so the scan
// simply starts counting from yesterday.
func rebuildStreak(log state.CompletionLog, habitID string, today time.Time) int {
	streak := 0
	if log.HabitDone(gameclock.ISODate(today), habitID) {
		streak = 1
	}
	scan := today.AddDate(0, 0, -1)
	for i := 0; i < maxScanDays; i++ {
		if !log.HabitDone(gameclock.ISODate(scan), habitID) {
			break
		}
		streak++
		scan = scan.AddDate(0, 0, -1)
	}
	return streak
}

// RepairGlobalStreak recomputes the player's global streak: the number of
// consecutive days whose aggregate completion percentage met the threshold.
// A today still below the threshold is skipped rather than treated as a
// gap, because the day is in progress.
// Returns 1 when the stored value changed, else 0.
func RepairGlobalStreak(player *state.Player, settings state.Settings, now time.Time, pct func(time.Time) float64) int {
	today := gameclock.GameDay(now, settings.DayStartTime)

	count := 0
	var lastQualifying time.Time

	scan := today
	for i := 0; i < maxScanDays; i++ {
		if pct(scan) >= globalStreakThreshold {
			count++
			if lastQualifying.IsZero() {
				lastQualifying = scan
			}
		} else if !scan.Equal(today) {
			break
		}
		scan = scan.AddDate(0, 0, -1)
	}

	changed := 0
	if player.GlobalStreak != count {
		player.GlobalStreak = count
		changed = 1
	}
	if count > 0 {
		player.LastActionDate = gameclock.ISODate(lastQualifying)
	}
	return changed
}
