package engine

import "github.com/geko990/quest-life-sub000/internal/state"

// Achievement represents a badge the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// Achievements computes the earned status of every badge from the current
// document. Purely derived; nothing is stored.
func Achievements(doc *state.Document) []Achievement {
	level := LevelForTotalXP(doc.Player.TotalXP)

	bestStreak := 0
	for _, h := range doc.Habits {
		if h != nil && h.Streak > bestStreak {
			bestStreak = h.Streak
		}
	}

	oneshotsDone := 0
	for _, o := range doc.Oneshots {
		if o != nil && o.Done {
			oneshotsDone++
		}
	}
	questsDone := 0
	for _, q := range doc.Quests {
		if q != nil && q.Done {
			questsDone++
		}
	}

	return []Achievement{
		{ID: "first_steps", Name: "First Steps", Description: "Reach level 2", Icon: "🌱", Earned: level >= 2},
		{ID: "adventurer", Name: "Adventurer", Description: "Reach level 5", Icon: "🌿", Earned: level >= 5},
		{ID: "veteran", Name: "Veteran", Description: "Reach level 10", Icon: "⭐", Earned: level >= 10},
		{ID: "legend", Name: "Legend", Description: "Reach level 20", Icon: "💫", Earned: level >= 20},

		{ID: "spark", Name: "Spark", Description: "A 3-day habit streak", Icon: "🔥", Earned: bestStreak >= 3},
		{ID: "on_fire", Name: "On Fire", Description: "A 7-day habit streak", Icon: "🔥", Earned: bestStreak >= 7},
		{ID: "unbroken", Name: "Unbroken", Description: "A 30-day habit streak", Icon: "⚡", Earned: bestStreak >= 30},

		{ID: "consistent", Name: "Consistent", Description: "Global streak of 7 days", Icon: "📅", Earned: doc.Player.GlobalStreak >= 7},
		{ID: "relentless", Name: "Relentless", Description: "Global streak of 30 days", Icon: "🏆", Earned: doc.Player.GlobalStreak >= 30},

		{ID: "finisher", Name: "Finisher", Description: "Complete a oneshot", Icon: "✅", Earned: oneshotsDone >= 1},
		{ID: "closer", Name: "Closer", Description: "Complete 25 oneshots", Icon: "🏅", Earned: oneshotsDone >= 25},
		{ID: "quester", Name: "Quester", Description: "Finish a quest", Icon: "🗺️", Earned: questsDone >= 1},
	}
}

// CountEarned returns how many of the given achievements are earned.
func CountEarned(list []Achievement) int {
	n := 0
	for _, a := range list {
		if a.Earned {
			n++
		}
	}
	return n
}
