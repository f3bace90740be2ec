package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/geko990/quest-life-sub000/internal/state"
)

type TemplateKind string

const (
	TemplateKindHabit TemplateKind = "habit"
	TemplateKindQuest TemplateKind = "quest"
)

// ChallengeTemplate is a catalog entry the player can instantiate. The
// catalog itself is static data; accepting one just creates the habit or
// quest it describes.
type ChallengeTemplate struct {
	Code      string
	Title     string
	Kind      TemplateKind
	Frequency state.Frequency
	FreqTimes int
	Stars     int
	Days      int
}

func ChallengeCatalog() []ChallengeTemplate {
	return []ChallengeTemplate{
		{Code: "hydrate", Title: "Drink 2L of water", Kind: TemplateKindHabit, Frequency: state.FrequencyDaily, Stars: 1},
		{Code: "early_bird", Title: "Up before 7am", Kind: TemplateKindHabit, Frequency: state.FrequencyDaily, Stars: 3},
		{Code: "gym_3x", Title: "Gym session", Kind: TemplateKindHabit, Frequency: state.FrequencyTimesWeek, FreqTimes: 3, Stars: 4},
		{Code: "deep_clean", Title: "Deep-clean one room", Kind: TemplateKindHabit, Frequency: state.FrequencyTimesMonth, FreqTimes: 2, Stars: 3},
		{Code: "thirty_day_run", Title: "30 days of running", Kind: TemplateKindQuest, Days: 30},
		{Code: "week_no_sugar", Title: "One week without sugar", Kind: TemplateKindQuest, Days: 7},
	}
}

// ChallengeByCode returns the catalog entry for code, or nil.
func ChallengeByCode(code string) *ChallengeTemplate {
	code = strings.TrimSpace(strings.ToLower(code))
	catalog := ChallengeCatalog()
	for i := range catalog {
		if catalog[i].Code == code {
			return &catalog[i]
		}
	}
	return nil
}

// AcceptChallenge instantiates a catalog template as a real habit or quest.
func (s *Service) AcceptChallenge(ctx context.Context, code string) (string, error) {
	t := ChallengeByCode(code)
	if t == nil {
		return "", fmt.Errorf("unknown challenge: %s", code)
	}

	switch t.Kind {
	case TemplateKindHabit:
		h, err := s.AddHabit(ctx, CreateHabitInput{
			Name:      t.Title,
			Frequency: t.Frequency,
			FreqTimes: t.FreqTimes,
			Stars:     t.Stars,
		})
		if err != nil {
			return "", err
		}
		return h.ID, nil
	case TemplateKindQuest:
		q, err := s.AddQuest(ctx, t.Title, t.Days)
		if err != nil {
			return "", err
		}
		return q.ID, nil
	default:
		return "", fmt.Errorf("invalid challenge kind: %s", t.Kind)
	}
}
