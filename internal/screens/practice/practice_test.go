package practice

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanaz/internal/kana"
	prac "github.com/abhisek/kanaz/internal/practice"
)

type staticSource []string

func (s staticSource) IDs() []string { return s }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testScreen(t *testing.T, ids ...string) *PracticeScreen {
	t.Helper()
	ctrl := prac.New(kana.Default(), prac.WithRand(rand.New(rand.NewPCG(7, 11))))
	s := New(ctrl, staticSource(ids))
	s.Init()
	return s
}

// answerCorrectly drives the key presses that answer the current question.
func answerCorrectly(t *testing.T, s *PracticeScreen) tea.Cmd {
	t.Helper()
	q, ok := s.ctrl.Question()
	if !ok {
		t.Fatal("expected a question")
	}
	if q.Variant == prac.VariantRecall {
		for r, row := range s.options.Rows {
			for c, rec := range row {
				if rec.Romaji == q.Record.Romaji {
					s.options.Row, s.options.Col = r, c
				}
			}
		}
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		return cmd
	}
	for _, r := range q.Record.Romaji {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestInitStartsSession(t *testing.T) {
	s := testScreen(t, "ka")

	if s.ctrl.State() != prac.StateAwaitingAnswer {
		t.Fatalf("State = %v, want awaiting answer", s.ctrl.State())
	}
	q, _ := s.ctrl.Question()
	if q.Record.Romaji != "ka" {
		t.Errorf("Record = %q, want ka", q.Record.Romaji)
	}
	if !strings.Contains(s.View(80, 24), q.Prompt()) {
		t.Error("view should show the prompt")
	}
}

func TestInitWithEmptySelection(t *testing.T) {
	s := testScreen(t)

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if s.ctrl.State() != prac.StateIdle {
		t.Errorf("State = %v, want idle", s.ctrl.State())
	}
	if !strings.Contains(s.View(80, 24), "No kana selected") {
		t.Error("view should explain why nothing started")
	}
}

func TestCorrectAnswerSchedulesAdvance(t *testing.T) {
	s := testScreen(t, "shi", "tsu", "n")

	for i := 0; i < 6; i++ {
		cmd := answerCorrectly(t, s)
		if cmd == nil {
			t.Fatalf("round %d: expected an advance command", i)
		}
		fb, ok := s.ctrl.Feedback()
		if !ok || fb.Outcome != prac.OutcomeCorrect {
			t.Fatalf("round %d: feedback = %+v, want correct", i, fb)
		}
		if s.ctrl.InputEnabled() {
			t.Fatalf("round %d: input should be closed during feedback", i)
		}

		p, _ := s.ctrl.Pending()
		s.Update(advanceMsg{ID: p.ID})
		if s.ctrl.State() != prac.StateAwaitingAnswer {
			t.Fatalf("round %d: State = %v after advance", i, s.ctrl.State())
		}
	}

	if got := s.ctrl.Score().Correct; got != 6 {
		t.Errorf("Correct = %d, want 6", got)
	}
}

func TestKeysIgnoredDuringFeedback(t *testing.T) {
	s := testScreen(t, "a")
	answerCorrectly(t, s)
	before := s.ctrl.Score()

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter during feedback should do nothing")
	}
	s.Update(ctrlKey('g'))
	if s.ctrl.Score() != before {
		t.Errorf("score changed during feedback: %+v -> %+v", before, s.ctrl.Score())
	}
}

func TestGiveUp(t *testing.T) {
	s := testScreen(t, "ka")

	_, cmd := s.Update(ctrlKey('g'))
	if cmd == nil {
		t.Fatal("expected an advance command")
	}
	fb, ok := s.ctrl.Feedback()
	if !ok || fb.Outcome != prac.OutcomeRevealed {
		t.Fatalf("feedback = %+v, want revealed", fb)
	}
	p, _ := s.ctrl.Pending()
	if p.Delay != prac.GiveUpDelay {
		t.Errorf("Delay = %v, want %v", p.Delay, prac.GiveUpDelay)
	}
	if !strings.Contains(s.View(80, 24), "Answer: ka") {
		t.Error("view should reveal the answer")
	}
}

func TestEmptyEnterIsIgnored(t *testing.T) {
	s := testScreen(t, "ka")
	for {
		q, _ := s.ctrl.Question()
		if q.Variant == prac.VariantRecognize {
			break
		}
		s.ctrl.Generate()
		s.resetInput()
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty submit should be ignored")
	}
	if !s.ctrl.InputEnabled() {
		t.Error("input should stay open")
	}
}

func TestBackCancelsPendingAdvance(t *testing.T) {
	s := testScreen(t, "ka")
	answerCorrectly(t, s)
	p, _ := s.ctrl.Pending()

	s.Back()
	if s.ctrl.State() != prac.StateIdle {
		t.Fatalf("State = %v, want idle", s.ctrl.State())
	}

	s.Update(advanceMsg{ID: p.ID})
	if s.ctrl.State() != prac.StateIdle {
		t.Errorf("stale advance revived the session: %v", s.ctrl.State())
	}
}

func TestStaleAdvanceIgnored(t *testing.T) {
	s := testScreen(t, "ka")
	q, _ := s.ctrl.Question()

	s.Update(advanceMsg{ID: 999})
	got, _ := s.ctrl.Question()
	if got.Record != q.Record || s.ctrl.State() != prac.StateAwaitingAnswer {
		t.Error("unknown advance should not change the question")
	}
}

func TestScheduleAdvanceWithoutPending(t *testing.T) {
	if cmd := scheduleAdvance(prac.Pending{}); cmd != nil {
		t.Error("expected nil command for an empty pending advance")
	}
}
