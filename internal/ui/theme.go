package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Quest Life theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHabit    = "🔁"
	IconOneshot  = "🎯"
	IconQuest    = "🗺️"
	IconFlame    = "🔥"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconWrench   = "🔧"
	IconWarn     = "⚠️"
	IconLock     = "🔒"
	IconCalendar = "📅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText renders a streak count, going gold when it is worth bragging
// about.
func StreakText(streak int) string {
	s := fmt.Sprintf("%s %d", IconFlame, streak)
	switch {
	case streak >= 30:
		return Gold.Render(s)
	case streak >= 7:
		return Good.Render(s)
	case streak > 0:
		return s
	default:
		return Muted.Render(s)
	}
}

// Stars renders a 1-5 rating as filled/empty stars.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return Gold.Render(strings.Repeat("★", n)) + Muted.Render(strings.Repeat("☆", 5-n))
}

// ProgressBar renders value/total as a fixed-width textual bar.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
