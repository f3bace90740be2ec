package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
	"github.com/geko990/quest-life-sub000/internal/storage"
)

func newTestService(t *testing.T) (*Service, *state.Store) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := state.NewStore(storage.NewDocumentRepo(db), "")
	doc, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	svc := NewService(store, doc)
	svc.SetNow(func() time.Time { return afternoon(2025, time.March, 10) })
	return svc, store
}

func TestCompleteHabitAwardsXPAndStreak(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.AddHabit(ctx, CreateHabitInput{Name: "Meditate", Stars: 3})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	res, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if res.XPAwarded != 20 {
		t.Fatalf("xp=%d, want 20", res.XPAwarded)
	}
	if res.Streak != 1 || h.Streak != 1 {
		t.Fatalf("streak=%d/%d, want 1", res.Streak, h.Streak)
	}

	_, err = svc.CompleteHabit(ctx, h.ID)
	var dup AlreadyDoneError
	if !errors.As(err, &dup) {
		t.Fatalf("second completion err=%v, want AlreadyDoneError", err)
	}
}

func TestCompleteHabitFeedsLinkedStat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddStat(ctx, "str", "Strength"); err != nil {
		t.Fatalf("AddStat: %v", err)
	}
	h, err := svc.AddHabit(ctx, CreateHabitInput{Name: "Push-ups", Stars: 5, Stat: "str"})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	if _, err := svc.CompleteHabit(ctx, h.ID); err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	st := svc.Document().StatByID("str")
	if st.XP != 40 {
		t.Fatalf("stat xp=%d, want 40", st.XP)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	h, err := svc.AddHabit(ctx, CreateHabitInput{Name: "Read", Stars: 2})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if _, err := svc.CompleteHabit(ctx, h.ID); err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}

	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Player.TotalXP != 15 {
		t.Fatalf("reloaded totalXp=%d, want 15", reloaded.Player.TotalXP)
	}
	today := gameclock.ISODate(svc.Today())
	if !reloaded.CompletionLog.HabitDone(today, h.ID) {
		t.Fatalf("completion log entry missing after reload")
	}
}

func TestCompleteOneshotOnlyOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.AddOneshot(ctx, "File taxes", 4)
	if err != nil {
		t.Fatalf("AddOneshot: %v", err)
	}
	res, err := svc.CompleteOneshot(ctx, o.ID)
	if err != nil {
		t.Fatalf("CompleteOneshot: %v", err)
	}
	if res.XPAwarded != 30 {
		t.Fatalf("xp=%d, want 30", res.XPAwarded)
	}
	if _, err := svc.CompleteOneshot(ctx, o.ID); err == nil {
		t.Fatalf("expected error completing a done oneshot")
	}
}

func TestQuestCompletesAfterTargetDays(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.AddQuest(ctx, "Two days of yoga", 2)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}

	res, err := svc.CheckInQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("day 1 check-in: %v", err)
	}
	if res.QuestDone || res.XPAwarded != 20 {
		t.Fatalf("day 1: done=%v xp=%d, want false/20", res.QuestDone, res.XPAwarded)
	}
	if _, err := svc.CheckInQuest(ctx, q.ID); err == nil {
		t.Fatalf("expected error for second check-in on the same day")
	}

	svc.SetNow(func() time.Time { return afternoon(2025, time.March, 11) })
	res, err = svc.CheckInQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("day 2 check-in: %v", err)
	}
	if !res.QuestDone {
		t.Fatalf("quest should complete on day 2")
	}
	if res.XPAwarded != 60 { // check-in 20 + completion bonus 40
		t.Fatalf("day 2 xp=%d, want 60", res.XPAwarded)
	}
}

func TestDayCheckResetsAndShifts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	doc := svc.Document()

	doc.Habits = append(doc.Habits,
		&state.Habit{ID: "old", Name: "Old daily", Streak: 5, CreatedAt: afternoon(2025, time.January, 1)},
		&state.Habit{ID: "gym", Name: "Gym", Frequency: state.FrequencyTimesWeek, FreqTimes: 2},
	)

	res := svc.DayCheck(ctx)
	if res.StreaksReset != 1 {
		t.Fatalf("streaksReset=%d, want 1", res.StreaksReset)
	}
	if res.HabitsShifted != 1 {
		t.Fatalf("habitsShifted=%d, want 1", res.HabitsShifted)
	}
	if doc.Habits[0].Streak != 0 {
		t.Fatalf("missed daily habit not reset")
	}
	if doc.Habits[1].ShiftedToDate == nil || *doc.Habits[1].ShiftedToDate != "2025-03-10" {
		t.Fatalf("periodic habit not shifted to today")
	}

	// Nothing changed since; the second pass is a no-op.
	res = svc.DayCheck(ctx)
	if res.StreaksReset+res.HabitsShifted != 0 {
		t.Fatalf("second day check should change nothing, got %+v", res)
	}
}

func TestServiceRepairIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	doc := svc.Document()

	doc.Habits = append(doc.Habits, &state.Habit{ID: "h1", Name: "Walk", Streak: 9})
	today := svc.Today()
	markDays(doc.CompletionLog, "h1", today, 0, 1, 2)

	if fixed := svc.Repair(ctx); fixed == 0 {
		t.Fatalf("first repair fixed nothing")
	}
	if doc.Habits[0].Streak != 3 {
		t.Fatalf("streak=%d, want 3", doc.Habits[0].Streak)
	}
	if fixed := svc.Repair(ctx); fixed != 0 {
		t.Fatalf("second repair fixed=%d, want 0", fixed)
	}
}

func TestAcceptChallengeInstantiatesTemplate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.AcceptChallenge(ctx, "gym_3x")
	if err != nil {
		t.Fatalf("AcceptChallenge: %v", err)
	}
	h := svc.Document().HabitByID(id)
	if h == nil {
		t.Fatalf("challenge habit not created")
	}
	if h.Frequency != state.FrequencyTimesWeek || h.FreqTimes != 3 {
		t.Fatalf("habit=%+v, want 3x/week", h)
	}

	if _, err := svc.AcceptChallenge(ctx, "no_such_challenge"); err == nil {
		t.Fatalf("expected error for unknown challenge")
	}
}

func TestRestoreSnapshot(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	h, err := svc.AddHabit(ctx, CreateHabitInput{Name: "Stretch", Stars: 3})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if _, err := svc.CompleteHabit(ctx, h.ID); err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}

	snaps, err := store.Snapshots(ctx, 10)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if len(snaps) < 2 {
		t.Fatalf("snapshots=%d, want at least 2", len(snaps))
	}

	// snaps[1] predates the completion.
	doc, err := store.Restore(ctx, snaps[1].ID, svc.now())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if doc.Player.TotalXP != 0 {
		t.Fatalf("restored totalXp=%d, want 0", doc.Player.TotalXP)
	}
}

func TestRefreshCallbackFires(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	fired := 0
	svc.OnRefresh(func() { fired++ })

	if _, err := svc.AddOneshot(ctx, "Call dentist", 1); err != nil {
		t.Fatalf("AddOneshot: %v", err)
	}
	if fired != 1 {
		t.Fatalf("refresh fired %d times, want 1", fired)
	}
}
