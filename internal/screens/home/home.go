// Package home is the landing menu of the TUI.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanaz/internal/router"
	"github.com/abhisek/kanaz/internal/screen"
	"github.com/abhisek/kanaz/internal/selection"
	"github.com/abhisek/kanaz/internal/ui/components"
	"github.com/abhisek/kanaz/internal/ui/layout"
	"github.com/abhisek/kanaz/internal/ui/theme"
)

const startItem = 1

// Screens builds the screens reachable from the home menu.
type Screens struct {
	Browse    func() screen.Screen
	Practice  func() screen.Screen
	Reference func() screen.Screen
}

// HomeScreen is the landing menu.
type HomeScreen struct {
	menu components.Menu
	sel  *selection.Store
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. START PRACTICE is disabled while sel is empty.
func New(sel *selection.Store, screens Screens) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	// Practice opens above browse so that leaving a session lands on the grid.
	start := func() tea.Cmd {
		return func() tea.Msg {
			return router.PushStackMsg{Screens: []screen.Screen{screens.Browse(), screens.Practice()}}
		}
	}

	items := []components.MenuItem{
		{Label: "BROWSE KANA", Action: push(screens.Browse)},
		{Label: "START PRACTICE", Action: start},
		{Label: "REFERENCE TABLE", Action: push(screens.Reference)},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{menu: components.NewMenu(items), sel: sel}
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// refresh syncs the start affordance with the selection.
func (h *HomeScreen) refresh() {
	h.menu = h.menu.SetDisabled(startItem, !h.sel.CanStart())
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.refresh()
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("ひらがな ・ カタカナ"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick the kana you want to drill, then practise."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View()))
	b.WriteString("\n\n")

	status := fmt.Sprintf("%d kana selected", h.sel.Len())
	if !h.sel.CanStart() {
		status = "Select some kana in BROWSE KANA to start practising"
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(status))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}
