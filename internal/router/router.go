// Package router keeps the stack of screens the app navigates through.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanaz/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PushStackMsg opens several screens at once. The last becomes active and the
// others sit beneath it, so going back walks through them in reverse.
type PushStackMsg struct {
	Screens []screen.Screen
}

// PopScreenMsg closes the active screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen without growing the
// stack.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom screen is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root at the bottom of the stack.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens screens in order and returns their combined Init commands.
func (r *Router) Push(screens ...screen.Screen) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(screens))
	for _, s := range screens {
		if s == nil {
			continue
		}
		r.stack = append(r.stack, s)
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Pop closes the active screen, giving it a chance to tear down through
// screen.BackHandler. It does nothing on the root screen.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return back(top)
}

// Replace tears down the active screen and puts s in its place.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	i := len(r.stack) - 1
	cmd := back(r.stack[i])
	r.stack[i] = s
	return tea.Batch(cmd, s.Init())
}

func back(s screen.Screen) tea.Cmd {
	if h, ok := s.(screen.BackHandler); ok {
		return h.Back()
	}
	return nil
}

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens, root included.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PushStackMsg:
		return r.Push(msg.Screens...)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	i := len(r.stack) - 1
	updated, cmd := r.stack[i].Update(msg)
	r.stack[i] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
