package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: ink background, sakura accents
var (
	Primary   = lipgloss.Color("#F472B6") // Sakura
	Secondary = lipgloss.Color("#60A5FA") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Lantern
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111827") // Ink
	BgCard    = lipgloss.Color("#1F2937") // Dark slate
	Border    = lipgloss.Color("#374151") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph is used for the large kana prompt in practice mode.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 4)
)

// Kana cards
var (
	Card = lipgloss.NewStyle().
		Foreground(Text).
		Align(lipgloss.Center).
		Width(12)

	CardSelected = Card.
			Background(Primary).
			Foreground(BgDark).
			Bold(true)

	CardCursor = Card.
			Foreground(Accent).
			Underline(true).
			Bold(true)

	CardCursorSelected = CardSelected.
				Background(Accent)

	Option = lipgloss.NewStyle().
		Foreground(Text).
		Align(lipgloss.Center).
		Width(8)

	OptionCursor = Option.
			Background(Primary).
			Foreground(BgDark).
			Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Revealed = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
