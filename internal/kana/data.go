package kana

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed kana.json
var tableJSON []byte

//go:embed kana.schema.json
var tableSchemaJSON []byte

const schemaURL = "schema://kana.json"

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded gojūon table. It panics if the embedded data is
// invalid, since it is fixed at build time.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(tableJSON)
		if err != nil {
			panic(fmt.Sprintf("kana: embedded table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

type tableDoc struct {
	Rows []struct {
		Name string   `json:"name"`
		Kana []Record `json:"kana"`
	} `json:"rows"`
}

// Parse validates raw table JSON against the embedded schema and builds a Table.
func Parse(raw []byte) (*Table, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc tableDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	rows := make([]Row, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		rows = append(rows, Row{Name: r.Name, Records: r.Kana})
	}
	return newTable(rows)
}

func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(tableSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
