package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case settledMsg:
		m.form = m.submissionUC.State()
		return m, nil
	case spinner.TickMsg:
		if !m.form.IsChecking() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMessage maps keys onto form events
func (m Model) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The alert is modal: the first key only dismisses it.
	if m.form.Alert != "" {
		m.form = m.submissionUC.DismissAlert()
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		return m.submit()
	case "ctrl+r":
		m.form = m.submissionUC.Reset()
		m.input.SetValue(m.form.Input)
		return m, nil
	case "ctrl+d":
		m.form = m.submissionUC.ToggleDetails()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	state, done, err := m.submissionUC.Submit(m.ctx, m.input.Value())
	m.form = state
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, waitForSettled(done))
}
