package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canonical, kind := m.Canonical()

	lines := []string{
		titleStyle.Render("datefmt preview"),
		m.input.View(),
		"",
	}
	if canonical != "" {
		lines = append(lines, labelStyle.Render("Stored as")+canonical+warningStyle.Render("  ("+kind.String()+")"))
		lines = append(lines, "")
	}

	for i, r := range m.Renderings() {
		text := r.Text
		if r.Err != nil {
			text = "-"
		}

		label := string(r.Format)
		if r.Format == m.stored {
			label += storedStyle.Render(" *")
		}
		row := labelStyle.Render(label) + text
		if i == m.selected {
			row = selectedStyle.Render("› " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	switch {
	case m.err != nil:
		lines = append(lines, dangerStyle.Render("Error: "+m.err.Error()))
	case m.status != "":
		lines = append(lines, storedStyle.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
