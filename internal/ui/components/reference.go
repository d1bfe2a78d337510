package components

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/ui/theme"
)

// referenceColumns is the widest row of the gojūon table.
const referenceColumns = 5

// RenderReference renders rows as a bordered table, one gojūon row per line.
func RenderReference(rows []kana.Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
			if col == 0 {
				return s.Foreground(theme.Primary).Bold(true)
			}
			return s.Foreground(theme.Text)
		})

	for _, r := range rows {
		cells := make([]string, 0, referenceColumns+1)
		cells = append(cells, r.Name)
		for _, rec := range r.Records {
			cells = append(cells, rec.String())
		}
		for len(cells) < referenceColumns+1 {
			cells = append(cells, "")
		}
		t = t.Row(cells...)
	}
	return t.Render()
}
