package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ressKim-io/phishguard/internal/usecase"
)

// Run starts the terminal form and blocks until the user quits or ctx ends
func Run(ctx context.Context, submissionUC usecase.SubmissionUsecase) error {
	m := NewModel(ctx, submissionUC)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
