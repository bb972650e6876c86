package browser

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusCmd schedules the removal of the status line.
func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// setStatus shows msg in the footer and returns the command that hides it.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusSeq++
	m.status = msg
	return clearStatusCmd(m.statusSeq, statusTimeout)
}
