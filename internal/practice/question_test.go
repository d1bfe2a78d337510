package practice

import (
	"testing"

	"github.com/abhisek/kanaz/internal/kana"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ka", "ka"},
		{"  KA  ", "ka"},
		{"Shi", "shi"},
		{"ＴＳＵ", "tsu"},
		{"　chi　", "chi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestionPrompt(t *testing.T) {
	c := newTestController()
	present(t, c, "shi", VariantRecall)
	q, _ := c.Question()
	if q.Prompt() != "shi" {
		t.Errorf("recall prompt = %q, want shi", q.Prompt())
	}

	present(t, c, "shi", VariantRecognize)
	c.question.Script = kana.Katakana
	q, _ = c.Question()
	if q.Prompt() != "シ" {
		t.Errorf("recognize prompt = %q, want シ", q.Prompt())
	}
}

func TestStringers(t *testing.T) {
	if VariantRecognize.String() != "recognize" || VariantRecall.String() != "recall" {
		t.Error("variant names")
	}
	if OutcomeRevealed.String() != "revealed" {
		t.Error("outcome names")
	}
	if StateFeedback.String() != "feedback" || StateIdle.String() != "idle" {
		t.Error("state names")
	}
}
