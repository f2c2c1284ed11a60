package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
	"github.com/ressKim-io/phishguard/internal/usecase"
)

// Model is the terminal rendering of the submission form
type Model struct {
	ctx          context.Context
	submissionUC usecase.SubmissionUsecase

	input   textinput.Model
	spinner spinner.Model
	form    entity.FormState

	width    int
	quitting bool
}

// NewModel creates a model bound to the submission controller.
// ctx bounds classifier calls started from the terminal.
func NewModel(ctx context.Context, submissionUC usecase.SubmissionUsecase) Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com"
	ti.CharLimit = 2048
	ti.Prompt = "URL: "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = checkingStyle

	form := submissionUC.State()
	ti.SetValue(form.Input)

	return Model{
		ctx:          ctx,
		submissionUC: submissionUC,
		input:        ti,
		spinner:      sp,
		form:         form,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

