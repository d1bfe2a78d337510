package practice

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/abhisek/kanaz/internal/kana"
)

// Variant is the kind of question being asked.
type Variant int

const (
	// VariantRecognize shows a glyph and expects the romaji typed in.
	VariantRecognize Variant = iota
	// VariantRecall shows the romaji and expects a pick from the full table.
	VariantRecall
)

func (v Variant) String() string {
	switch v {
	case VariantRecognize:
		return "recognize"
	case VariantRecall:
		return "recall"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Question is one round of practice. It is discarded once the next question
// is generated or the session ends.
type Question struct {
	Record  kana.Record
	Variant Variant

	// Script is the glyph shown for VariantRecognize.
	Script kana.Script

	// Options is the whole table in shuffled order for VariantRecall.
	Options []kana.Record
}

// Prompt returns what the learner is shown.
func (q Question) Prompt() string {
	if q.Variant == VariantRecall {
		return q.Record.Romaji
	}
	return q.Record.Glyph(q.Script)
}

// Outcome classifies how a question ended.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeRevealed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Feedback is the judgement shown after an answer or give-up.
type Feedback struct {
	Outcome  Outcome
	Expected kana.Record
	Given    string
}

// Correct reports whether the answer was accepted.
func (f Feedback) Correct() bool {
	return f.Outcome == OutcomeCorrect
}

// Text renders the feedback line.
func (f Feedback) Text() string {
	switch f.Outcome {
	case OutcomeCorrect:
		return "Correct!"
	case OutcomeIncorrect:
		return "Incorrect (answer: " + f.Expected.String() + ")"
	default:
		return "Answer: " + f.Expected.Romaji
	}
}

// Normalize prepares free-text input for comparison with a romaji id:
// full-width Latin is narrowed, surrounding space trimmed and case folded.
func Normalize(input string) string {
	s := strings.TrimSpace(width.Narrow.String(input))
	return cases.Lower(language.Und).String(s)
}

// matchesRomaji judges a recognize answer.
func matchesRomaji(q Question, input string) bool {
	return Normalize(input) == q.Record.Romaji
}

// matchesChoice judges a recall pick. Either glyph matching is enough, so a
// mismatched hiragana/katakana pair is still accepted.
func matchesChoice(q Question, hiragana, katakana string) bool {
	return hiragana == q.Record.Hiragana || katakana == q.Record.Katakana
}
