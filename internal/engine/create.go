package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/geko990/quest-life-sub000/internal/state"
)

type CreateHabitInput struct {
	Name      string
	Frequency state.Frequency
	FreqTimes int
	Stat      string
	Stars     int
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

func validateStars(stars int) (int, error) {
	if stars == 0 {
		return 3, nil
	}
	if stars < 1 || stars > 5 {
		return 0, fmt.Errorf("invalid star rating: %d", stars)
	}
	return stars, nil
}

// AddHabit creates a habit and persists the document.
func (s *Service) AddHabit(ctx context.Context, in CreateHabitInput) (*state.Habit, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	freq := in.Frequency
	if freq == "" {
		freq = state.FrequencyDaily
	}
	if !freq.IsValid() {
		return nil, fmt.Errorf("invalid frequency: %q", in.Frequency)
	}
	if freq.IsPeriodic() && in.FreqTimes < 1 {
		return nil, fmt.Errorf("periodic habit needs a per-period target, got %d", in.FreqTimes)
	}
	stars, err := validateStars(in.Stars)
	if err != nil {
		return nil, err
	}
	if in.Stat != "" && s.doc.StatByID(in.Stat) == nil {
		return nil, NotFoundError{Kind: "stat", ID: in.Stat}
	}

	h := &state.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Frequency: freq,
		FreqTimes: in.FreqTimes,
		Stat:      in.Stat,
		Stars:     stars,
		CreatedAt: s.now(),
	}
	s.doc.Habits = append(s.doc.Habits, h)
	s.persist(ctx)
	return h, nil
}

// AddOneshot creates a one-off task and persists the document.
func (s *Service) AddOneshot(ctx context.Context, name string, stars int) (*state.Oneshot, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	st, err := validateStars(stars)
	if err != nil {
		return nil, err
	}

	o := &state.Oneshot{
		ID:        uuid.NewString(),
		Name:      n,
		Stars:     st,
		CreatedAt: s.now(),
	}
	s.doc.Oneshots = append(s.doc.Oneshots, o)
	s.persist(ctx)
	return o, nil
}

// AddQuest creates a multi-day quest and persists the document.
func (s *Service) AddQuest(ctx context.Context, name string, days int) (*state.Quest, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, fmt.Errorf("quest length must be at least 1 day, got %d", days)
	}

	q := &state.Quest{
		ID:        uuid.NewString(),
		Name:      n,
		Days:      days,
		StartedAt: s.now(),
	}
	s.doc.Quests = append(s.doc.Quests, q)
	s.persist(ctx)
	return q, nil
}

// AddStat creates a trackable stat (attribute) and persists the document.
func (s *Service) AddStat(ctx context.Context, id, name string) (*state.Stat, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return nil, errors.New("stat id is required")
	}
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if s.doc.StatByID(id) != nil {
		return nil, fmt.Errorf("stat %q already exists", id)
	}

	st := &state.Stat{ID: id, Name: n, Level: 1}
	s.doc.Stats = append(s.doc.Stats, st)
	s.persist(ctx)
	return st, nil
}
