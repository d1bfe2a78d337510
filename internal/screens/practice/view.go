package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanaz/internal/kana"
	prac "github.com/abhisek/kanaz/internal/practice"
	"github.com/abhisek/kanaz/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	q, ok := s.ctrl.Question()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Session ended.")
	}

	var b strings.Builder
	b.WriteString(s.renderScoreLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if q.Variant == prac.VariantRecall {
		b.WriteString(center.Render(theme.Subtitle.Render("Which kana is")))
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Glyph.Render(q.Prompt())))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.options.View(s.renderOption)))
	} else {
		b.WriteString(center.Render(theme.Subtitle.Render(fmt.Sprintf("Read this %s", q.Script))))
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Glyph.Render(q.Prompt())))
		b.WriteString("\n\n")
		b.WriteString(center.Render("> " + s.input.View()))
	}
	b.WriteString("\n\n")

	if fb, ok := s.ctrl.Feedback(); ok {
		b.WriteString(center.Render(renderFeedback(fb)))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (s *PracticeScreen) renderScoreLine(width int) string {
	score := s.ctrl.Score()
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d", score.Served))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d  %s %d",
			theme.Correct.Render("✓"), score.Correct,
			theme.Incorrect.Render("✗"), score.Incorrect,
			theme.Revealed.Render("?"), score.GaveUp,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *PracticeScreen) renderOption(rec kana.Record, cursor bool) string {
	text := rec.Pair()
	if cursor && s.ctrl.InputEnabled() {
		return theme.OptionCursor.Render(text)
	}
	return theme.Option.Render(text)
}

func renderFeedback(fb prac.Feedback) string {
	switch fb.Outcome {
	case prac.OutcomeCorrect:
		return theme.Correct.Render(fb.Text())
	case prac.OutcomeRevealed:
		return theme.Revealed.Render(fb.Text())
	default:
		return theme.Incorrect.Render(fb.Text())
	}
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render(msg)
}
