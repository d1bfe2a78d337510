// Package kana holds the static gojūon table used by every other part of kanaz.
package kana

import (
	"fmt"
	"strings"
)

// Script selects which of the two kana scripts a glyph is shown in.
type Script int

const (
	Hiragana Script = iota
	Katakana
)

func (s Script) String() string {
	if s == Katakana {
		return "katakana"
	}
	return "hiragana"
}

// Record is one syllable of the table. Romaji is unique and used as its ID.
type Record struct {
	Hiragana string `json:"hiragana"`
	Katakana string `json:"katakana"`
	Romaji   string `json:"romaji"`
	Row      string `json:"-"`
}

// Glyph returns the record's glyph in the given script.
func (r Record) Glyph(s Script) string {
	if s == Katakana {
		return r.Katakana
	}
	return r.Hiragana
}

// Pair renders both glyphs as "か/カ".
func (r Record) Pair() string {
	return r.Hiragana + "/" + r.Katakana
}

// String renders the record as "か/カ ka".
func (r Record) String() string {
	return r.Pair() + " " + r.Romaji
}

// Row is a named group of up to five records sharing a consonant.
type Row struct {
	Name    string
	Records []Record
}

// Table is an immutable, ordered list of records.
type Table struct {
	records []Record
	rows    []Row
	index   map[string]int
}

// newTable builds a Table from rows, rejecting duplicate or empty romaji.
func newTable(rows []Row) (*Table, error) {
	t := &Table{index: make(map[string]int)}
	for _, row := range rows {
		r := Row{Name: row.Name}
		for _, rec := range row.Records {
			rec.Row = row.Name
			if strings.TrimSpace(rec.Romaji) == "" {
				return nil, fmt.Errorf("row %s: empty romaji", row.Name)
			}
			if _, dup := t.index[rec.Romaji]; dup {
				return nil, fmt.Errorf("row %s: duplicate romaji %q", row.Name, rec.Romaji)
			}
			t.index[rec.Romaji] = len(t.records)
			t.records = append(t.records, rec)
			r.Records = append(r.Records, rec)
		}
		t.rows = append(t.rows, r)
	}
	return t, nil
}

// All returns a copy of every record in table order.
func (t *Table) All() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Rows returns the rows in table order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		recs := make([]Record, len(r.Records))
		copy(recs, r.Records)
		out[i] = Row{Name: r.Name, Records: recs}
	}
	return out
}

// Row returns the named row.
func (t *Table) Row(name string) (Row, bool) {
	for _, r := range t.Rows() {
		if r.Name == name {
			return r, true
		}
	}
	return Row{}, false
}

// Lookup finds a record by romaji.
func (t *Table) Lookup(romaji string) (Record, bool) {
	i, ok := t.index[romaji]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// Has reports whether romaji names a record in the table.
func (t *Table) Has(romaji string) bool {
	_, ok := t.index[romaji]
	return ok
}

// Romaji returns every identifier in table order.
func (t *Table) Romaji() []string {
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r.Romaji
	}
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Index returns the table position of romaji, or -1.
func (t *Table) Index(romaji string) int {
	i, ok := t.index[romaji]
	if !ok {
		return -1
	}
	return i
}
