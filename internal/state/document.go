// Package state holds the single in-memory game document and its
// persistence wrapper. Everything the engine reads or mutates lives here.
package state

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTimesWeek  Frequency = "times_week"
	FrequencyTimesMonth Frequency = "times_month"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyTimesWeek, FrequencyTimesMonth:
		return true
	default:
		return false
	}
}

// IsPeriodic reports whether the frequency is a per-week/per-month target
// rather than an everyday habit.
func (f Frequency) IsPeriodic() bool {
	return f == FrequencyTimesWeek || f == FrequencyTimesMonth
}

func ParseFrequency(input string) (Frequency, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

type Settings struct {
	// DayStartTime is the hour (0-23) at which a new game day begins.
	DayStartTime int       `json:"dayStartTime"`
	WeekStart    WeekStart `json:"weekStart"`
}

// StartsMonday reports whether weeks begin on Monday. Anything other than
// an explicit "sunday" counts as Monday.
func (s Settings) StartsMonday() bool {
	return s.WeekStart != WeekStartSunday
}

type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	// FreqTimes is the per-period target; meaningful only for periodic
	// frequencies.
	FreqTimes int `json:"freqTimes,omitempty"`
	// Streak is the consecutive-day count; meaningful only for daily habits.
	Streak        int       `json:"streak"`
	ShiftedToDate *string   `json:"shiftedToDate"`
	Locked        bool      `json:"locked,omitempty"`
	Stat          string    `json:"stat,omitempty"`
	Stars         int       `json:"stars,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Daily reports whether the habit participates in day-to-day streak logic.
// An absent frequency is treated as daily for backward compatibility.
func (h *Habit) Daily() bool {
	return h.Frequency == "" || h.Frequency == FrequencyDaily
}

type Oneshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stars     int       `json:"stars"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Quest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Days      int       `json:"days"`
	Done      bool      `json:"done"`
	StartedAt time.Time `json:"startedAt,omitempty"`
}

type Player struct {
	TotalXP int `json:"totalXp"`
	// Level is derived from TotalXP; persisted copies are recomputed on load
	// and never trusted.
	Level          int    `json:"level"`
	GlobalStreak   int    `json:"globalStreak"`
	LastActionDate string `json:"lastActionDate,omitempty"`
}

type Stat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
}

// DayRecord is one day's worth of completions. Early versions of the save
// format stored a bare array of habit ids; UnmarshalJSON accepts that shape
// and lifts it into the object form so the rest of the system only ever
// sees the canonical record.
type DayRecord struct {
	Habits   []string `json:"habits"`
	Oneshots []string `json:"oneshots"`
	Quests   []string `json:"quests"`
}

func (r *DayRecord) UnmarshalJSON(data []byte) error {
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		r.Habits = legacy
		r.Oneshots = []string{}
		r.Quests = []string{}
		return nil
	}

	type dayRecord DayRecord
	var rec dayRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode day record: %w", err)
	}
	*r = DayRecord(rec)
	r.normalize()
	return nil
}

func (r *DayRecord) normalize() {
	if r.Habits == nil {
		r.Habits = []string{}
	}
	if r.Oneshots == nil {
		r.Oneshots = []string{}
	}
	if r.Quests == nil {
		r.Quests = []string{}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// CompletionLog maps ISO date strings (YYYY-MM-DD) to that day's record.
type CompletionLog map[string]*DayRecord

// Record returns the entry for date, creating it when absent.
func (l CompletionLog) Record(date string) *DayRecord {
	rec, ok := l[date]
	if !ok || rec == nil {
		rec = &DayRecord{}
		rec.normalize()
		l[date] = rec
	}
	return rec
}

// HabitDone reports whether the habit id was completed on date.
func (l CompletionLog) HabitDone(date, id string) bool {
	rec, ok := l[date]
	if !ok || rec == nil {
		return false
	}
	return contains(rec.Habits, id)
}

// MarkHabit appends the habit id to date's record once.
func (l CompletionLog) MarkHabit(date, id string) {
	rec := l.Record(date)
	if !contains(rec.Habits, id) {
		rec.Habits = append(rec.Habits, id)
	}
}

// MarkOneshot appends the oneshot id to date's record once.
func (l CompletionLog) MarkOneshot(date, id string) {
	rec := l.Record(date)
	if !contains(rec.Oneshots, id) {
		rec.Oneshots = append(rec.Oneshots, id)
	}
}

// MarkQuest appends a quest check-in to date's record once.
func (l CompletionLog) MarkQuest(date, id string) {
	rec := l.Record(date)
	if !contains(rec.Quests, id) {
		rec.Quests = append(rec.Quests, id)
	}
}

// QuestDone reports whether the quest id was checked in on date.
func (l CompletionLog) QuestDone(date, id string) bool {
	rec, ok := l[date]
	if !ok || rec == nil {
		return false
	}
	return contains(rec.Quests, id)
}

// CountQuestCheckins counts check-ins for a quest across the whole log.
func (l CompletionLog) CountQuestCheckins(id string) int {
	n := 0
	for _, rec := range l {
		if rec != nil && contains(rec.Quests, id) {
			n++
		}
	}
	return n
}

// Document is the aggregate state the whole application operates on.
type Document struct {
	Player        Player        `json:"player"`
	Stats         []*Stat       `json:"stats"`
	Habits        []*Habit      `json:"habits"`
	Oneshots      []*Oneshot    `json:"oneshots"`
	Quests        []*Quest      `json:"quests"`
	CompletionLog CompletionLog `json:"completionLog"`
	Settings      Settings      `json:"settings"`
}

// NewDocument returns an empty document with defaults applied.
func NewDocument() *Document {
	doc := &Document{}
	doc.Normalize()
	return doc
}

// Normalize repairs structural defects after load: nil maps/slices, nil log
// entries, and missing settings defaults. It is safe to call repeatedly.
func (d *Document) Normalize() {
	if d.Stats == nil {
		d.Stats = []*Stat{}
	}
	if d.Habits == nil {
		d.Habits = []*Habit{}
	}
	if d.Oneshots == nil {
		d.Oneshots = []*Oneshot{}
	}
	if d.Quests == nil {
		d.Quests = []*Quest{}
	}
	if d.CompletionLog == nil {
		d.CompletionLog = CompletionLog{}
	}
	for date, rec := range d.CompletionLog {
		if rec == nil {
			rec = &DayRecord{}
			d.CompletionLog[date] = rec
		}
		rec.normalize()
	}
	if d.Settings.WeekStart == "" {
		d.Settings.WeekStart = WeekStartMonday
	}
	if d.Settings.DayStartTime < 0 || d.Settings.DayStartTime > 23 {
		d.Settings.DayStartTime = 0
	}
}

// HabitByID returns the habit with the given id, or nil.
func (d *Document) HabitByID(id string) *Habit {
	for _, h := range d.Habits {
		if h != nil && h.ID == id {
			return h
		}
	}
	return nil
}

// OneshotByID returns the oneshot with the given id, or nil.
func (d *Document) OneshotByID(id string) *Oneshot {
	for _, o := range d.Oneshots {
		if o != nil && o.ID == id {
			return o
		}
	}
	return nil
}

// QuestByID returns the quest with the given id, or nil.
func (d *Document) QuestByID(id string) *Quest {
	for _, q := range d.Quests {
		if q != nil && q.ID == id {
			return q
		}
	}
	return nil
}

// StatByID returns the stat with the given id, or nil.
func (d *Document) StatByID(id string) *Stat {
	for _, s := range d.Stats {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}
