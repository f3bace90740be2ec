package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/state"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

type itemKind int

const (
	kindHabit itemKind = iota
	kindOneshot
	kindQuest
)

type boardItem struct {
	kind   itemKind
	id     string
	name   string
	detail string
	done   bool
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	items    []boardItem
	selected int

	lastLog string
}

type completedMsg struct {
	name string
	res  *engine.CompleteResult
	err  error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	m := boardModel{ctx: ctx, svc: svc, lastLog: "Loaded."}
	m.rebuildItems()
	return m
}

func (m boardModel) Init() tea.Cmd { return nil }

// rebuildItems derives today's board from the document: daily habits,
// periodic habits shifted to today, open oneshots, and running quests.
func (m *boardModel) rebuildItems() {
	doc := m.svc.Document()
	today := m.svc.Today()
	todayStr := gameclock.ISODate(today)

	var items []boardItem
	for _, h := range doc.Habits {
		if h == nil || h.Locked {
			continue
		}
		due := h.Daily() || (h.ShiftedToDate != nil && *h.ShiftedToDate == todayStr)
		if !due {
			continue
		}
		detail := ui.StreakText(h.Streak)
		if h.Frequency.IsPeriodic() {
			detail = ui.Muted.Render(fmt.Sprintf("%d× per %s", h.FreqTimes, periodName(h.Frequency)))
		}
		items = append(items, boardItem{
			kind:   kindHabit,
			id:     h.ID,
			name:   h.Name,
			detail: detail,
			done:   doc.CompletionLog.HabitDone(todayStr, h.ID),
		})
	}
	for _, o := range doc.Oneshots {
		if o == nil || o.Done {
			continue
		}
		items = append(items, boardItem{
			kind:   kindOneshot,
			id:     o.ID,
			name:   o.Name,
			detail: ui.Stars(o.Stars),
		})
	}
	for _, q := range doc.Quests {
		if q == nil || q.Done {
			continue
		}
		progress := doc.CompletionLog.CountQuestCheckins(q.ID)
		items = append(items, boardItem{
			kind:   kindQuest,
			id:     q.ID,
			name:   q.Name,
			detail: ui.Muted.Render(fmt.Sprintf("day %d of %d", progress, q.Days)),
			done:   doc.CompletionLog.QuestDone(todayStr, q.ID),
		})
	}

	m.items = items
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func periodName(f state.Frequency) string {
	if f == state.FrequencyTimesMonth {
		return "month"
	}
	return "week"
}

func (m boardModel) completeCmd(it boardItem) tea.Cmd {
	return func() tea.Msg {
		var (
			res *engine.CompleteResult
			err error
		)
		switch it.kind {
		case kindHabit:
			res, err = m.svc.CompleteHabit(m.ctx, it.id)
		case kindOneshot:
			res, err = m.svc.CompleteOneshot(m.ctx, it.id)
		case kindQuest:
			res, err = m.svc.CheckInQuest(m.ctx, it.id)
		}
		return completedMsg{name: it.name, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s %s: +%d XP", ui.IconDone, msg.name, msg.res.XPAwarded)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		if msg.res.QuestDone {
			m.lastLog += " " + ui.Good.Render("quest complete!")
		}
		m.rebuildItems()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			fixed := m.svc.Repair(m.ctx)
			m.lastLog = fmt.Sprintf("%s Repair: %d fixed.", ui.IconWrench, fixed)
			m.rebuildItems()
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.items) {
				return m, nil
			}
			it := m.items[m.selected]
			if it.done {
				m.lastLog = "Already done today."
				return m, nil
			}
			return m, m.completeCmd(it)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(ui.Muted.Render("Nothing due today. Add a habit with: ql add --habit \"...\""))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		cursor := "  "
		if i == m.selected {
			cursor = ui.Key.Render("> ")
		}
		check := "· "
		if it.done {
			check = ui.Good.Render("✓ ")
		}
		name := it.name
		if i == m.selected {
			name = ui.SelectedRow.Render(name)
		}
		fmt.Fprintf(&b, "%s%s%s %s  %s\n", cursor, check, kindIcon(it.kind), name, it.detail)
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("j/k move · space complete · r repair · q quit"))
	b.WriteString("\n" + m.lastLog + "\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	doc := m.svc.Document()
	p := doc.Player
	level := engine.LevelForTotalXP(p.TotalXP)

	into := p.TotalXP - engine.CumulativeXPForLevel(level)
	span := engine.CumulativeXPForLevel(level+1) - engine.CumulativeXPForLevel(level)
	bar := ui.ProgressBar(into, span, 24)

	pct := engine.CompletionPercentageForDate(doc, m.svc.Today())
	return fmt.Sprintf("%s  %s %s %s  %s %s  %s",
		ui.Heading(ui.IconSparkle, "Quest Life"),
		ui.LabelValue("Level", level),
		bar,
		ui.Muted.Render(fmt.Sprintf("%d/%d XP", into, span)),
		ui.LabelValue("Global", ui.StreakText(p.GlobalStreak)),
		ui.Muted.Render(fmt.Sprintf("today %.0f%%", pct)),
		ui.Muted.Render(time.Now().Format("Mon Jan 2")),
	)
}

func kindIcon(k itemKind) string {
	switch k {
	case kindOneshot:
		return ui.IconOneshot
	case kindQuest:
		return ui.IconQuest
	default:
		return ui.IconHabit
	}
}
