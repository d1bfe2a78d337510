// Package practice is the quiz screen: it drives a practice.Controller from
// key presses and renders the current question and feedback.
package practice

import (
	tea "charm.land/bubbletea/v2"

	prac "github.com/abhisek/kanaz/internal/practice"
	"github.com/abhisek/kanaz/internal/screen"
	"github.com/abhisek/kanaz/internal/ui/components"
	"github.com/abhisek/kanaz/internal/ui/layout"
)

// optionsPerRow is the number of kana options shown per grid row.
const optionsPerRow = 8

// PracticeScreen implements screen.Screen for an active session.
type PracticeScreen struct {
	ctrl    *prac.Controller
	source  prac.Source
	input   components.TextInput
	options components.KanaGrid
	errMsg  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.BackHandler = (*PracticeScreen)(nil)

// New creates a PracticeScreen that starts a session over source on Init.
func New(ctrl *prac.Controller, source prac.Source) *PracticeScreen {
	return &PracticeScreen{
		ctrl:   ctrl,
		source: source,
		input:  newInput(),
	}
}

func newInput() components.TextInput {
	return components.NewTextInput("type the romaji...", true, 8)
}

func (s *PracticeScreen) Init() tea.Cmd {
	if !s.ctrl.Start(s.source) {
		s.errMsg = "No kana selected. Pick some in Browse first."
		return nil
	}
	return s.resetInput()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if !s.ctrl.InputEnabled() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Exit"},
		}
	}
	q, _ := s.ctrl.Question()
	if q.Variant == prac.VariantRecall {
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Ctrl+G", Description: "Give up"},
			{Key: "Esc", Description: "Exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+G", Description: "Give up"},
		{Key: "Esc", Description: "Exit"},
	}
}

// Back ends the session before the router pops this screen. Any advance still
// in flight becomes stale.
func (s *PracticeScreen) Back() tea.Cmd {
	s.ctrl.Exit()
	return nil
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.ctrl.Advance(msg.ID) {
			return s, s.resetInput()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.recognizing() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.ctrl.InputEnabled() {
		return s, nil
	}

	if msg.String() == "ctrl+g" {
		_, p, ok := s.ctrl.GiveUp()
		if !ok {
			return s, nil
		}
		s.input.Submit(false)
		return s, scheduleAdvance(p)
	}

	q, _ := s.ctrl.Question()
	if q.Variant == prac.VariantRecall {
		return s.handleChoiceKey(msg)
	}

	if msg.String() == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		fb, p, ok := s.ctrl.SubmitAnswer(s.input.Value())
		if !ok {
			return s, nil
		}
		s.input.Submit(fb.Correct())
		return s, scheduleAdvance(p)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleChoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
		rec, ok := s.options.Current()
		if !ok {
			return s, nil
		}
		_, p, ok := s.ctrl.SubmitKanaChoice(rec.Hiragana, rec.Katakana)
		if !ok {
			return s, nil
		}
		return s, scheduleAdvance(p)
	}
	s.options = s.options.Update(msg)
	return s, nil
}

// resetInput prepares the widgets for the current question.
func (s *PracticeScreen) resetInput() tea.Cmd {
	q, ok := s.ctrl.Question()
	if !ok {
		return nil
	}
	if q.Variant == prac.VariantRecall {
		s.options = components.NewKanaGrid(components.Chunk(q.Options, optionsPerRow))
		return nil
	}
	s.input = newInput()
	return s.input.Init()
}

func (s *PracticeScreen) recognizing() bool {
	q, ok := s.ctrl.Question()
	return ok && q.Variant == prac.VariantRecognize && s.ctrl.InputEnabled()
}
