package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/router"
	"github.com/abhisek/kanaz/internal/screen"
	"github.com/abhisek/kanaz/internal/selection"
)

type memPersister map[string][]byte

func (m memPersister) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memPersister) Put(_ context.Context, key string, value []byte) error {
	m[key] = value
	return nil
}

type stubScreen struct{ title string }

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(int, int) string                    { return s.title }
func (s stubScreen) Title() string                           { return s.title }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome(t *testing.T) (*HomeScreen, *selection.Store) {
	t.Helper()
	sel := selection.New(kana.Default(), memPersister{})
	h := New(sel, Screens{
		Browse:    func() screen.Screen { return stubScreen{"Browse"} },
		Practice:  func() screen.Screen { return stubScreen{"Practice"} },
		Reference: func() screen.Screen { return stubScreen{"Reference"} },
	})
	return h, sel
}

func pushedTitle(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen.Title()
}

func TestStartDisabledWhenEmpty(t *testing.T) {
	h, _ := testHome(t)

	if !h.menu.Items[startItem].Disabled {
		t.Fatal("START PRACTICE should be disabled with an empty selection")
	}

	// Down skips the disabled item and lands on REFERENCE TABLE.
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if got := pushedTitle(t, cmd); got != "Reference" {
		t.Errorf("pushed %q, want Reference", got)
	}
}

func TestStartEnabledAfterSelection(t *testing.T) {
	h, sel := testHome(t)
	if err := sel.Toggle(context.Background(), "ka"); err != nil {
		t.Fatal(err)
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushStackMsg)
	if !ok {
		t.Fatalf("expected PushStackMsg, got %T", cmd())
	}
	var titles []string
	for _, s := range msg.Screens {
		titles = append(titles, s.Title())
	}
	if len(titles) != 2 || titles[0] != "Browse" || titles[1] != "Practice" {
		t.Errorf("pushed %v, want [Browse Practice]", titles)
	}
}

func TestBrowseIsDefault(t *testing.T) {
	h, _ := testHome(t)
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if got := pushedTitle(t, cmd); got != "Browse" {
		t.Errorf("pushed %q, want Browse", got)
	}
}
