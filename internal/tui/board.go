package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/geko990/quest-life-sub000/internal/engine"
)

// RunBoard starts the interactive dashboard.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(ctx, svc), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
