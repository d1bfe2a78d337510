// Package browse renders the full kana table and lets the learner choose
// which syllables to practise.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/router"
	"github.com/abhisek/kanaz/internal/screen"
	"github.com/abhisek/kanaz/internal/selection"
	"github.com/abhisek/kanaz/internal/ui/components"
	"github.com/abhisek/kanaz/internal/ui/layout"
	"github.com/abhisek/kanaz/internal/ui/theme"
)

// BrowseScreen shows every row of the table as a grid of toggleable cards.
type BrowseScreen struct {
	table       *kana.Table
	sel         *selection.Store
	grid        components.KanaGrid
	newPractice func() screen.Screen
	logger      *zap.Logger
	status      string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a BrowseScreen. newPractice builds the screen pushed when the
// learner starts a session.
func New(table *kana.Table, sel *selection.Store, newPractice func() screen.Screen, logger *zap.Logger) *BrowseScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseScreen{
		table:       table,
		sel:         sel,
		grid:        components.NewKanaGrid(components.TableRows(table)),
		newPractice: newPractice,
		logger:      logger,
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
		{Key: "a", Description: "All"},
		{Key: "r", Description: "Reset"},
		{Key: "Enter", Description: "Practise"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	ctx := context.Background()
	switch kmsg.String() {
	case "space", " ":
		if rec, ok := b.grid.Current(); ok {
			b.report("toggle", b.sel.Toggle(ctx, rec.Romaji))
		}
	case "a":
		b.report("select all", b.sel.SelectAll(ctx))
	case "r":
		b.report("reset", b.sel.Reset(ctx))
	case "enter", "s", "tab":
		if !b.sel.CanStart() {
			b.status = "Select at least one kana first."
			return b, nil
		}
		b.status = ""
		return b, func() tea.Msg {
			return router.PushScreenMsg{Screen: b.newPractice()}
		}
	default:
		b.grid = b.grid.Update(msg)
	}
	return b, nil
}

func (b *BrowseScreen) report(op string, err error) {
	if err == nil {
		b.status = ""
		return
	}
	b.logger.Error("selection update failed", zap.String("op", op), zap.Error(err))
	b.status = "Could not save selection: " + err.Error()
}

func (b *BrowseScreen) View(width, height int) string {
	labels := make([]string, 0, len(b.table.Rows()))
	for _, r := range b.table.Rows() {
		labels = append(labels, r.Name)
	}

	cards := strings.Split(b.grid.View(b.renderCard), "\n")
	lines := make([]string, 0, len(cards))
	for i, line := range cards {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		lines = append(lines, theme.Hint.Width(6).Render(label)+line)
	}
	grid := strings.Join(lines, "\n")

	var out strings.Builder
	out.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(grid))
	out.WriteString("\n\n")

	label := fmt.Sprintf("▶ START PRACTICE (%d)", b.sel.Len())
	button := theme.ButtonActive.Render(label)
	if !b.sel.CanStart() {
		button = theme.ButtonInactive.Render(label)
	}
	out.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(button))

	if b.status != "" {
		out.WriteString("\n")
		out.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(b.status))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(out.String())
}

func (b *BrowseScreen) renderCard(rec kana.Record, cursor bool) string {
	text := rec.Hiragana + " " + rec.Katakana + " " + rec.Romaji
	selected := b.sel.Contains(rec.Romaji)
	switch {
	case cursor && selected:
		return theme.CardCursorSelected.Render(text)
	case cursor:
		return theme.CardCursor.Render(text)
	case selected:
		return theme.CardSelected.Render(text)
	default:
		return theme.Card.Render(text)
	}
}
