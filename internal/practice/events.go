package practice

// EventKind names a session event.
type EventKind string

const (
	EventSessionStarted EventKind = "session_started"
	EventQuestionShown  EventKind = "question_shown"
	EventAnswered       EventKind = "answered"
	EventGaveUp         EventKind = "gave_up"
	EventSessionEnded   EventKind = "session_ended"
)

// Event is a state change reported to the observer. Question and Feedback are
// set when the event concerns a question.
type Event struct {
	Kind      EventKind
	SessionID string
	State     State
	Question  *Question
	Feedback  *Feedback
	Score     Score
}

// Observer receives session events synchronously from the controller.
type Observer func(Event)

func (c *Controller) emit(e Event) {
	if c.observer == nil {
		return
	}
	e.SessionID = c.sessionID
	e.State = c.state
	e.Score = c.score
	if c.question != nil {
		q := *c.question
		e.Question = &q
	}
	if c.feedback != nil {
		fb := *c.feedback
		e.Feedback = &fb
	}
	c.observer(e)
}
