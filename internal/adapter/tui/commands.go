package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

// settledMsg reports that one classifier call has settled.
// The model re-reads the controller state instead of trusting the payload,
// because settlements of overlapping calls may reach Update out of order.
type settledMsg struct{}

// waitForSettled blocks on the controller's settle channel
func waitForSettled(done <-chan entity.FormState) tea.Cmd {
	return func() tea.Msg {
		<-done
		return settledMsg{}
	}
}
