package kana

import (
	"strings"
	"testing"
)

func TestDefaultTableShape(t *testing.T) {
	tbl := Default()

	if tbl.Len() != 46 {
		t.Fatalf("Len() = %d, want 46", tbl.Len())
	}
	rows := tbl.Rows()
	if len(rows) != 10 {
		t.Fatalf("len(Rows()) = %d, want 10", len(rows))
	}

	wantRows := []string{"あ行", "か行", "さ行", "た行", "な行", "は行", "ま行", "や行", "ら行", "わ行"}
	for i, name := range wantRows {
		if rows[i].Name != name {
			t.Errorf("row %d = %q, want %q", i, rows[i].Name, name)
		}
		if len(rows[i].Records) == 0 || len(rows[i].Records) > 5 {
			t.Errorf("row %s has %d records", name, len(rows[i].Records))
		}
	}
}

func TestRomajiUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Default().All() {
		if seen[r.Romaji] {
			t.Errorf("duplicate romaji %q", r.Romaji)
		}
		seen[r.Romaji] = true
	}
	if len(seen) != 46 {
		t.Errorf("unique romaji = %d, want 46", len(seen))
	}
}

func TestLookup(t *testing.T) {
	tbl := Default()

	tests := []struct {
		romaji   string
		hiragana string
		katakana string
		row      string
	}{
		{"a", "あ", "ア", "あ行"},
		{"shi", "し", "シ", "さ行"},
		{"tsu", "つ", "ツ", "た行"},
		{"wo", "を", "ヲ", "わ行"},
		{"n", "ん", "ン", "わ行"},
	}

	for _, tt := range tests {
		r, ok := tbl.Lookup(tt.romaji)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.romaji)
			continue
		}
		if r.Hiragana != tt.hiragana || r.Katakana != tt.katakana || r.Row != tt.row {
			t.Errorf("Lookup(%q) = %+v", tt.romaji, r)
		}
	}

	if _, ok := tbl.Lookup("ga"); ok {
		t.Error("expected ga (dakuten) to be absent")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	tbl := Default()
	all := tbl.All()
	all[0].Romaji = "zz"

	if r, _ := tbl.Lookup("a"); r.Romaji != "a" {
		t.Error("mutating All() result changed the table")
	}
	if tbl.Romaji()[0] != "a" {
		t.Errorf("Romaji()[0] = %q, want a", tbl.Romaji()[0])
	}
}

func TestRecordRendering(t *testing.T) {
	r, _ := Default().Lookup("ka")
	if got := r.String(); got != "か/カ ka" {
		t.Errorf("String() = %q", got)
	}
	if r.Glyph(Hiragana) != "か" || r.Glyph(Katakana) != "カ" {
		t.Errorf("Glyph mismatch: %q %q", r.Glyph(Hiragana), r.Glyph(Katakana))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"not json", `{`, "invalid JSON"},
		{"missing rows", `{}`, "schema validation"},
		{"uppercase romaji", `{"rows":[{"name":"x","kana":[{"hiragana":"あ","katakana":"ア","romaji":"A"}]}]}`, "schema validation"},
		{"duplicate romaji", `{"rows":[{"name":"x","kana":[
			{"hiragana":"あ","katakana":"ア","romaji":"a"},
			{"hiragana":"い","katakana":"イ","romaji":"a"}]}]}`, "duplicate romaji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}
