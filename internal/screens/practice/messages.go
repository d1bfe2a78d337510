package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	prac "github.com/abhisek/kanaz/internal/practice"
)

// advanceMsg fires when a scheduled advance comes due. ID identifies the
// advance so that stale ticks can be told apart.
type advanceMsg struct {
	ID uint64
}

// scheduleAdvance arms the timer for p.
func scheduleAdvance(p prac.Pending) tea.Cmd {
	if p.ID == 0 {
		return nil
	}
	id := p.ID
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return advanceMsg{ID: id}
	})
}
