// Package reference shows the whole kana table for lookup.
package reference

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/router"
	"github.com/abhisek/kanaz/internal/screen"
	"github.com/abhisek/kanaz/internal/ui/components"
	"github.com/abhisek/kanaz/internal/ui/layout"
	"github.com/abhisek/kanaz/internal/ui/theme"
)

// ReferenceScreen is a read-only view of the whole table.
type ReferenceScreen struct {
	table     *kana.Table
	newBrowse func() screen.Screen
}

var _ screen.Screen = (*ReferenceScreen)(nil)
var _ screen.KeyHintProvider = (*ReferenceScreen)(nil)

// New creates a ReferenceScreen. When newBrowse is set, "b" swaps this
// screen for the browse view.
func New(table *kana.Table, newBrowse func() screen.Screen) *ReferenceScreen {
	return &ReferenceScreen{table: table, newBrowse: newBrowse}
}

func (r *ReferenceScreen) Init() tea.Cmd {
	return nil
}

func (r *ReferenceScreen) Title() string {
	return "Reference"
}

func (r *ReferenceScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if r.newBrowse != nil {
		hints = append([]layout.KeyHint{{Key: "b", Description: "Browse"}}, hints...)
	}
	return hints
}

func (r *ReferenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || r.newBrowse == nil {
		return r, nil
	}
	if kmsg.String() == "b" {
		return r, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: r.newBrowse()}
		}
	}
	return r, nil
}

func (r *ReferenceScreen) View(width, height int) string {
	body := components.RenderReference(r.table.Rows())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}
