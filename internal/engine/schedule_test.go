package engine

import (
	"testing"
	"time"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
)

func strPtr(s string) *string { return &s }

func TestShiftRollsStaleDateForward(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	today := gameclock.GameDay(now, 0)
	h := &state.Habit{
		ID:            "h1",
		Frequency:     state.FrequencyTimesWeek,
		FreqTimes:     2,
		ShiftedToDate: strPtr(gameclock.ISODate(today.AddDate(0, 0, -3))),
	}
	log := state.CompletionLog{}

	changed := ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now)
	if changed != 1 {
		t.Fatalf("changed=%d, want 1", changed)
	}
	if h.ShiftedToDate == nil || *h.ShiftedToDate != gameclock.ISODate(today) {
		t.Fatalf("shiftedToDate=%v, want today", h.ShiftedToDate)
	}
}

func TestShiftSetsUnsetDateToToday(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	h := &state.Habit{ID: "h1", Frequency: state.FrequencyTimesMonth, FreqTimes: 1}
	log := state.CompletionLog{}

	ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now)
	if h.ShiftedToDate == nil || *h.ShiftedToDate != "2025-03-10" {
		t.Fatalf("shiftedToDate=%v, want 2025-03-10", h.ShiftedToDate)
	}
}

func TestShiftClearedOnceQuotaMet(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	today := gameclock.GameDay(now, 0)
	h := &state.Habit{
		ID:            "h1",
		Frequency:     state.FrequencyTimesWeek,
		FreqTimes:     2,
		ShiftedToDate: strPtr(gameclock.ISODate(today)),
	}
	log := state.CompletionLog{}
	// Two completions in the current week block.
	log.MarkHabit(gameclock.ISODate(today), "h1")
	log.MarkHabit(gameclock.ISODate(today.AddDate(0, 0, -1)), "h1")

	changed := ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now)
	if changed != 1 || h.ShiftedToDate != nil {
		t.Fatalf("quota met: changed=%d shiftedToDate=%v, want 1/nil", changed, h.ShiftedToDate)
	}
}

func TestShiftStableWhenAlreadyToday(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	h := &state.Habit{
		ID:            "h1",
		Frequency:     state.FrequencyTimesWeek,
		FreqTimes:     2,
		ShiftedToDate: strPtr("2025-03-10"),
	}
	log := state.CompletionLog{}

	if changed := ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now); changed != 0 {
		t.Fatalf("no-op pass changed=%d, want 0", changed)
	}
}

func TestShiftIgnoresCompletionsFromOtherPeriods(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	today := gameclock.GameDay(now, 0)
	h := &state.Habit{ID: "h1", Frequency: state.FrequencyTimesWeek, FreqTimes: 1}
	log := state.CompletionLog{}
	// A completion far outside the current week block keeps the quota unmet.
	log.MarkHabit(gameclock.ISODate(today.AddDate(0, 0, -20)), "h1")

	ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now)
	if h.ShiftedToDate == nil || *h.ShiftedToDate != gameclock.ISODate(today) {
		t.Fatalf("shiftedToDate=%v, want today (quota unmet)", h.ShiftedToDate)
	}
}

func TestShiftSkipsLockedHabits(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	h := &state.Habit{ID: "h1", Frequency: state.FrequencyTimesWeek, FreqTimes: 2, Locked: true}
	log := state.CompletionLog{}

	if changed := ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now); changed != 0 {
		t.Fatalf("locked habit shifted (changed=%d)", changed)
	}
	if h.ShiftedToDate != nil {
		t.Fatalf("locked habit got a shifted date")
	}
}

func TestShiftToleratesMalformedShiftDate(t *testing.T) {
	now := afternoon(2025, time.March, 10)
	h := &state.Habit{
		ID:            "h1",
		Frequency:     state.FrequencyTimesWeek,
		FreqTimes:     1,
		ShiftedToDate: strPtr("not-a-date"),
	}
	log := state.CompletionLog{}

	ShiftProgressiveHabits([]*state.Habit{h}, log, state.Settings{}, now)
	if h.ShiftedToDate == nil || *h.ShiftedToDate != "2025-03-10" {
		t.Fatalf("malformed shift date should be replaced, got %v", h.ShiftedToDate)
	}
}
