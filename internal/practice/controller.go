// Package practice implements the practice-session state machine: question
// generation, answer checking, feedback and the delayed advance to the next
// question. It has no UI dependencies.
package practice

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kanaz/internal/kana"
)

// Delays before the next question is generated.
const (
	AnswerDelay = 1500 * time.Millisecond
	GiveUpDelay = 2000 * time.Millisecond
)

// State is the controller's current phase.
type State int

const (
	StateIdle           State = iota // No session
	StateAwaitingAnswer              // Question shown, input open
	StateFeedback                    // Answer judged, advance pending
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateFeedback:
		return "feedback"
	default:
		return "idle"
	}
}

// Source provides the ids questions are drawn from. selection.Store satisfies it.
type Source interface {
	IDs() []string
}

// Pending is a scheduled advance. The driver arms a timer for Delay and calls
// Advance(ID) when it fires.
type Pending struct {
	ID    uint64
	Delay time.Duration
}

// Score is the running tally of the current session.
type Score struct {
	Served    int
	Correct   int
	Incorrect int
	GaveUp    int
}

// Controller owns a single practice session.
type Controller struct {
	table    *kana.Table
	rng      *rand.Rand
	observer Observer
	newID    func() string

	source    Source
	state     State
	question  *Question
	feedback  *Feedback
	pending   Pending
	lastID    uint64
	sessionID string
	score     Score
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for every draw.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithObserver registers an observer for session events.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// New creates an idle Controller over table.
func New(table *kana.Table, opts ...Option) *Controller {
	c := &Controller{
		table: table,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// SessionID returns the id of the active session, or "" when idle.
func (c *Controller) SessionID() string { return c.sessionID }

// Score returns the tally of the current (or last) session.
func (c *Controller) Score() Score { return c.score }

// InputEnabled reports whether the current question accepts an answer.
func (c *Controller) InputEnabled() bool {
	return c.state == StateAwaitingAnswer && c.question != nil
}

// Question returns the current question.
func (c *Controller) Question() (Question, bool) {
	if c.question == nil {
		return Question{}, false
	}
	return *c.question, true
}

// Feedback returns the judgement for the current question, if any.
func (c *Controller) Feedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Pending returns the scheduled advance, if one is armed.
func (c *Controller) Pending() (Pending, bool) {
	if c.pending.ID == 0 {
		return Pending{}, false
	}
	return c.pending, true
}

// Start begins a session drawing from src. It does nothing and returns false
// when src is empty.
func (c *Controller) Start(src Source) bool {
	if src == nil {
		return false
	}
	prev := c.source
	c.source = src
	if len(c.knownIDs()) == 0 {
		c.source = prev
		return false
	}
	c.sessionID = c.newID()
	c.score = Score{}
	c.pending = Pending{}
	c.emit(Event{Kind: EventSessionStarted})
	return c.Generate()
}

// Generate replaces the current question with a fresh one. It is a no-op
// while idle or when the source has nothing selected.
func (c *Controller) Generate() bool {
	if c.source == nil || c.sessionID == "" {
		return false
	}
	ids := c.knownIDs()
	if len(ids) == 0 {
		return false
	}

	rec, _ := c.table.Lookup(ids[c.rng.IntN(len(ids))])
	q := &Question{Record: rec}

	if c.rng.IntN(2) == 0 {
		q.Variant = VariantRecognize
		if c.rng.IntN(2) == 0 {
			q.Script = kana.Hiragana
		} else {
			q.Script = kana.Katakana
		}
	} else {
		q.Variant = VariantRecall
		q.Options = c.table.All()
		c.rng.Shuffle(len(q.Options), func(i, j int) {
			q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		})
	}

	c.question = q
	c.feedback = nil
	c.pending = Pending{}
	c.state = StateAwaitingAnswer
	c.score.Served++
	c.emit(Event{Kind: EventQuestionShown})
	return true
}

// SubmitAnswer judges free-text input against a recognize question.
func (c *Controller) SubmitAnswer(input string) (Feedback, Pending, bool) {
	if !c.InputEnabled() || c.question.Variant != VariantRecognize {
		return Feedback{}, Pending{}, false
	}
	fb := Feedback{Outcome: OutcomeIncorrect, Expected: c.question.Record, Given: input}
	if matchesRomaji(*c.question, input) {
		fb.Outcome = OutcomeCorrect
	}
	return c.judge(fb, AnswerDelay)
}

// SubmitKanaChoice judges a picked option against a recall question.
func (c *Controller) SubmitKanaChoice(hiragana, katakana string) (Feedback, Pending, bool) {
	if !c.InputEnabled() || c.question.Variant != VariantRecall {
		return Feedback{}, Pending{}, false
	}
	fb := Feedback{Outcome: OutcomeIncorrect, Expected: c.question.Record, Given: hiragana + "/" + katakana}
	if matchesChoice(*c.question, hiragana, katakana) {
		fb.Outcome = OutcomeCorrect
	}
	return c.judge(fb, AnswerDelay)
}

// GiveUp reveals the answer and closes input for the current question.
func (c *Controller) GiveUp() (Feedback, Pending, bool) {
	if !c.InputEnabled() {
		return Feedback{}, Pending{}, false
	}
	return c.judge(Feedback{Outcome: OutcomeRevealed, Expected: c.question.Record}, GiveUpDelay)
}

// Advance fires a scheduled advance. Stale ids (superseded or cancelled by
// Exit) are ignored.
func (c *Controller) Advance(id uint64) bool {
	if id == 0 || id != c.pending.ID || c.state != StateFeedback {
		return false
	}
	return c.Generate()
}

// Exit ends the session, discarding the question and cancelling any pending
// advance. It returns the final score.
func (c *Controller) Exit() (Score, bool) {
	if c.state == StateIdle {
		return c.score, false
	}
	c.emit(Event{Kind: EventSessionEnded})
	c.state = StateIdle
	c.question = nil
	c.feedback = nil
	c.pending = Pending{}
	c.source = nil
	c.sessionID = ""
	return c.score, true
}

func (c *Controller) judge(fb Feedback, delay time.Duration) (Feedback, Pending, bool) {
	switch fb.Outcome {
	case OutcomeCorrect:
		c.score.Correct++
	case OutcomeIncorrect:
		c.score.Incorrect++
	case OutcomeRevealed:
		c.score.GaveUp++
	}

	c.feedback = &fb
	c.state = StateFeedback
	c.lastID++
	c.pending = Pending{ID: c.lastID, Delay: delay}

	if fb.Outcome == OutcomeRevealed {
		c.emit(Event{Kind: EventGaveUp})
	} else {
		c.emit(Event{Kind: EventAnswered})
	}
	return fb, c.pending, true
}

// knownIDs filters the source down to ids present in the table.
func (c *Controller) knownIDs() []string {
	src := c.source.IDs()
	ids := src[:0:0]
	for _, id := range src {
		if c.table.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
