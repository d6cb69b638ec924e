package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/datefmt/internal/constants"
)

type savedMsg struct {
	err error
}

func (m Model) saveSelected() tea.Cmd {
	if m.save == nil {
		return nil
	}
	format := m.Selected()
	save := m.save
	return func() tea.Msg {
		return savedMsg{err: save(format)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.stored = m.Selected()
		m.base.DisplayFormat = m.stored
		m.status = fmt.Sprintf("Saved %s as the display format", m.stored)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selected = (m.selected + 1) % len(constants.DisplayFormats)
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			n := len(constants.DisplayFormats)
			m.selected = (m.selected + n - 1) % n
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Save):
			if m.save == nil {
				m.status = "Read-only preview, nothing saved"
				return m, nil
			}
			return m, m.saveSelected()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
