package tui

import (
	"strings"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

const detailsText = "The verdict comes from a model that inspects the URL structure, its\n" +
	"domain registration and the page it serves. Treat it as a signal, not a guarantee."

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Phishing URL Check") + "\n")
	s.WriteString(m.input.View() + "\n\n")

	if m.form.Alert != "" {
		s.WriteString(alertStyle.Render(m.form.Alert) + "\n")
		s.WriteString(helpStyle.Render("Press any key to continue") + "\n")
		return m.render(s.String())
	}

	if m.form.EnteredURL.Visible {
		s.WriteString(labelStyle.Render("Checked URL: ") + highlightStyle.Render(m.form.EnteredURL.Text) + "\n\n")
	}

	if m.form.Result.Visible {
		s.WriteString(m.viewResult() + "\n")
	}

	if m.form.ExtraReasons.Visible {
		for _, reason := range m.form.ExtraReasons.Items {
			s.WriteString(reason + "\n")
		}
	}

	if m.form.Result.Visible && m.form.Details.Enabled {
		s.WriteString("\n" + labelStyle.Render(m.form.Details.Label) + "\n")
		if m.form.Details.Visible {
			s.WriteString(detailsText + "\n")
		}
	}

	s.WriteString("\n" + helpStyle.Render(m.help()))
	return m.render(s.String())
}

func (m Model) viewResult() string {
	switch m.form.Result.Status {
	case entity.ResultStatusChecking:
		return m.spinner.View() + checkingStyle.Render(m.form.Result.Text)
	case entity.ResultStatusDanger:
		return dangerStyle.Render(m.form.Result.Text)
	case entity.ResultStatusSuccess:
		return successStyle.Render(m.form.Result.Text)
	case entity.ResultStatusConnectionError:
		return warningStyle.Render(m.form.Result.Text)
	default:
		return m.form.Result.Text
	}
}

func (m Model) help() string {
	keys := []string{"enter: check", "ctrl+r: reset"}
	if m.form.Details.Enabled {
		keys = append(keys, "ctrl+d: details")
	}
	keys = append(keys, "esc: quit")
	return strings.Join(keys, " • ")
}

func (m Model) render(content string) string {
	if m.width > 4 {
		return boxStyle.Width(m.width - 4).Render(content)
	}
	return boxStyle.Render(content)
}
