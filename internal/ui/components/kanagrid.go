package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanaz/internal/kana"
)

// KanaGrid is a cursor over rows of kana cards. Rows may have different
// lengths, as the gojūon table does.
type KanaGrid struct {
	Rows [][]kana.Record
	Row  int
	Col  int
}

// NewKanaGrid creates a grid with the cursor on the first card.
func NewKanaGrid(rows [][]kana.Record) KanaGrid {
	return KanaGrid{Rows: rows}
}

// TableRows lays the table out one gojūon row per grid row.
func TableRows(t *kana.Table) [][]kana.Record {
	var out [][]kana.Record
	for _, r := range t.Rows() {
		out = append(out, r.Records)
	}
	return out
}

// Chunk lays records out in rows of n.
func Chunk(records []kana.Record, n int) [][]kana.Record {
	if n <= 0 {
		n = 1
	}
	var out [][]kana.Record
	for len(records) > 0 {
		k := min(n, len(records))
		out = append(out, records[:k])
		records = records[k:]
	}
	return out
}

// Current returns the record under the cursor.
func (g KanaGrid) Current() (kana.Record, bool) {
	if g.Row < 0 || g.Row >= len(g.Rows) || g.Col < 0 || g.Col >= len(g.Rows[g.Row]) {
		return kana.Record{}, false
	}
	return g.Rows[g.Row][g.Col], true
}

// Update moves the cursor on arrow and vim keys.
func (g KanaGrid) Update(msg tea.Msg) KanaGrid {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Rows) == 0 {
		return g
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Col > 0 {
			g.Col--
		}
	case "right", "l":
		if g.Col < len(g.Rows[g.Row])-1 {
			g.Col++
		}
	case "up", "k":
		if g.Row > 0 {
			g.Row--
		}
	case "down", "j":
		if g.Row < len(g.Rows)-1 {
			g.Row++
		}
	}
	if last := len(g.Rows[g.Row]) - 1; g.Col > last {
		g.Col = last
	}
	return g
}

// View renders every card with render and joins them into rows.
func (g KanaGrid) View(render func(rec kana.Record, cursor bool) string) string {
	lines := make([]string, 0, len(g.Rows))
	for r, row := range g.Rows {
		cells := make([]string, 0, len(row))
		for c, rec := range row {
			cells = append(cells, render(rec, r == g.Row && c == g.Col))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}
