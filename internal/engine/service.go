// Package engine implements the game rules: the XP/level curve, the streak
// engine, the progressive habit scheduler, and the Service that applies
// them to the state document.
package engine

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
)

// Quest check-ins and completion bonuses use fixed star ratings.
const (
	questCheckinStars  = 3
	questCompleteStars = 5
)

// Service owns the in-memory document and runs every game mutation to
// completion before persisting. There is exactly one logical thread of
// control, so no locking is needed; each mutating method ends with a save
// of the post-mutation document.
type Service struct {
	store     *state.Store
	doc       *state.Document
	now       func() time.Time
	onRefresh func()
}

func NewService(store *state.Store, doc *state.Document) *Service {
	// Stored levels are hints only; recompute from XP on every load.
	doc.Player.Level = LevelForTotalXP(doc.Player.TotalXP)
	for _, st := range doc.Stats {
		if st != nil {
			st.Level = LevelForTotalXP(st.XP)
		}
	}
	return &Service{store: store, doc: doc, now: time.Now}
}

func (s *Service) Document() *state.Document { return s.doc }

func (s *Service) Store() *state.Store { return s.store }

// SetNow injects the time source, so tests can simulate arbitrary dates.
func (s *Service) SetNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// OnRefresh registers a callback invoked after every mutation, standing in
// for the UI refresh notification.
func (s *Service) OnRefresh(fn func()) {
	s.onRefresh = fn
}

// Today returns the current game day per the configured day-start hour.
func (s *Service) Today() time.Time {
	return gameclock.GameDay(s.now(), s.doc.Settings.DayStartTime)
}

// persist saves the document. A failed save is surfaced as a warning and
// the in-memory state is kept so the session can continue.
func (s *Service) persist(ctx context.Context) {
	if s.store != nil {
		if err := s.store.Save(ctx, s.doc, s.now()); err != nil {
			log.WithError(err).Warn("could not persist state; in-memory copy kept, changes may be lost")
		}
	}
	if s.onRefresh != nil {
		s.onRefresh()
	}
}

type CompleteResult struct {
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
	QuestDone   bool
}

// award adds xp to the player (and the linked stat, when present) and
// stamps the last action date.
func (s *Service) award(xp int, statID string, todayStr string) {
	p := &s.doc.Player
	p.TotalXP += xp
	p.Level = LevelForTotalXP(p.TotalXP)
	p.LastActionDate = todayStr

	if statID == "" {
		return
	}
	if st := s.doc.StatByID(statID); st != nil {
		st.XP += xp
		st.Level = LevelForTotalXP(st.XP)
	}
}

// CompleteHabit logs the habit as done for today, bumps its streak when it
// is a daily habit, and awards XP.
func (s *Service) CompleteHabit(ctx context.Context, id string) (*CompleteResult, error) {
	h := s.doc.HabitByID(id)
	if h == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}
	todayStr := gameclock.ISODate(s.Today())
	if s.doc.CompletionLog.HabitDone(todayStr, h.ID) {
		return nil, AlreadyDoneError{Kind: "habit", ID: id}
	}

	stars := h.Stars
	if stars == 0 {
		stars = 3
	}
	xp, err := XPForStars(stars)
	if err != nil {
		return nil, err
	}

	levelBefore := s.doc.Player.Level
	s.doc.CompletionLog.MarkHabit(todayStr, h.ID)
	if h.Daily() {
		h.Streak++
	} else {
		// The completion may have met the period quota; re-evaluate shifts.
		ShiftProgressiveHabits(s.doc.Habits, s.doc.CompletionLog, s.doc.Settings, s.now())
	}
	s.award(xp, h.Stat, todayStr)
	s.persist(ctx)

	return &CompleteResult{
		XPAwarded:   xp,
		LevelBefore: levelBefore,
		LevelAfter:  s.doc.Player.Level,
		LevelUp:     s.doc.Player.Level > levelBefore,
		Streak:      h.Streak,
	}, nil
}

// CompleteOneshot marks a one-off task done and awards its star XP once.
func (s *Service) CompleteOneshot(ctx context.Context, id string) (*CompleteResult, error) {
	o := s.doc.OneshotByID(id)
	if o == nil {
		return nil, NotFoundError{Kind: "oneshot", ID: id}
	}
	if o.Done {
		return nil, AlreadyDoneError{Kind: "oneshot", ID: id}
	}

	stars := o.Stars
	if stars == 0 {
		stars = 3
	}
	xp, err := XPForStars(stars)
	if err != nil {
		return nil, err
	}

	todayStr := gameclock.ISODate(s.Today())
	levelBefore := s.doc.Player.Level
	o.Done = true
	s.doc.CompletionLog.MarkOneshot(todayStr, o.ID)
	s.award(xp, "", todayStr)
	s.persist(ctx)

	return &CompleteResult{
		XPAwarded:   xp,
		LevelBefore: levelBefore,
		LevelAfter:  s.doc.Player.Level,
		LevelUp:     s.doc.Player.Level > levelBefore,
	}, nil
}

// CheckInQuest logs one quest check-in for today. When the check-in count
// reaches the quest's day target the quest completes and pays a bonus.
func (s *Service) CheckInQuest(ctx context.Context, id string) (*CompleteResult, error) {
	q := s.doc.QuestByID(id)
	if q == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	if q.Done {
		return nil, AlreadyDoneError{Kind: "quest", ID: id}
	}
	todayStr := gameclock.ISODate(s.Today())
	if s.doc.CompletionLog.QuestDone(todayStr, q.ID) {
		return nil, AlreadyDoneError{Kind: "quest", ID: id}
	}

	xp, err := XPForStars(questCheckinStars)
	if err != nil {
		return nil, err
	}

	levelBefore := s.doc.Player.Level
	s.doc.CompletionLog.MarkQuest(todayStr, q.ID)

	questDone := false
	if q.Days > 0 && s.doc.CompletionLog.CountQuestCheckins(q.ID) >= q.Days {
		q.Done = true
		questDone = true
		bonus, err := XPForStars(questCompleteStars)
		if err != nil {
			return nil, err
		}
		xp += bonus
	}

	s.award(xp, "", todayStr)
	s.persist(ctx)

	return &CompleteResult{
		XPAwarded:   xp,
		LevelBefore: levelBefore,
		LevelAfter:  s.doc.Player.Level,
		LevelUp:     s.doc.Player.Level > levelBefore,
		QuestDone:   questDone,
	}, nil
}

type DayCheckResult struct {
	StreaksReset  int
	HabitsShifted int
}

// DayCheck runs the daily passes: the grace-period-gated streak reset and
// the progressive habit scheduler. Persists only when something changed.
func (s *Service) DayCheck(ctx context.Context) *DayCheckResult {
	now := s.now()
	doc := s.doc

	res := &DayCheckResult{
		StreaksReset:  ResetDailyStreaks(doc.Habits, doc.CompletionLog, doc.Settings, now),
		HabitsShifted: ShiftProgressiveHabits(doc.Habits, doc.CompletionLog, doc.Settings, now),
	}
	if res.StreaksReset+res.HabitsShifted > 0 {
		s.persist(ctx)
	}
	return res
}

// Repair rebuilds every derived streak field from the completion log and
// returns the number of corrections made. Running it twice in a row
// returns 0 the second time.
func (s *Service) Repair(ctx context.Context) int {
	now := s.now()
	doc := s.doc

	fixed := RepairStreaks(doc.Habits, doc.CompletionLog, doc.Settings, now)
	fixed += RepairGlobalStreak(&doc.Player, doc.Settings, now, func(d time.Time) float64 {
		return CompletionPercentageForDate(doc, d)
	})
	if fixed > 0 {
		s.persist(ctx)
	}
	return fixed
}
