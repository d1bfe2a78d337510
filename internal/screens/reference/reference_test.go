package reference

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/router"
	"github.com/abhisek/kanaz/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "Browse" }

func TestViewListsTable(t *testing.T) {
	r := New(kana.Default(), nil)
	view := r.View(100, 30)
	for _, want := range []string{"あ行", "わ行", "し/シ shi", "ん/ン n"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSwitchToBrowse(t *testing.T) {
	r := New(kana.Default(), func() screen.Screen { return stubScreen{} })

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Browse" {
		t.Errorf("Title = %q, want Browse", msg.Screen.Title())
	}
}

func TestNoSwitchWithoutBrowse(t *testing.T) {
	r := New(kana.Default(), nil)
	if _, cmd := r.Update(tea.KeyPressMsg{Code: 'b', Text: "b"}); cmd != nil {
		t.Error("expected no command")
	}
}
