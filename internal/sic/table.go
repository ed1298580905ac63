// Package sic loads the SIC 2007 reference table used to describe the
// classification codes returned by the company registry.
package sic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NotFound is returned by Description for codes missing from the table.
const NotFound = "SIC code not found"

// FormatError indicates that the reference table does not have the expected shape.
type FormatError struct {
	Row     int
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("sic table row %d: %s", e.Row, e.Message)
	}
	return "sic table: " + e.Message
}

// Table maps SIC codes to their descriptions. It is never mutated after
// construction and is safe for concurrent readers.
type Table struct {
	descriptions map[string]string
}

// Load reads the reference table from a CSV file on disk.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sic table: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a two-column CSV (header row first) of code,description pairs.
func Parse(r io.Reader) (*Table, error) {
	// The published SIC07 list starts with a byte-order mark.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Message: "missing header row"}
		}
		return nil, fmt.Errorf("read sic header: %w", err)
	}
	if len(header) != 2 {
		return nil, &FormatError{Row: 1, Message: fmt.Sprintf("expected 2 header columns, got %d", len(header))}
	}

	descriptions := make(map[string]string)
	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("read sic row %d: %w", rowNum, err)
		}
		if len(row) != 2 {
			return nil, &FormatError{Row: rowNum, Message: fmt.Sprintf("expected 2 columns, got %d", len(row))}
		}

		code := strings.TrimSpace(row[0])
		descriptions[code] = strings.TrimSpace(row[1])
	}

	return &Table{descriptions: descriptions}, nil
}

// Description returns the description for code, or NotFound.
func (t *Table) Description(code string) string {
	if desc, ok := t.descriptions[code]; ok {
		return desc
	}
	return NotFound
}

// Describe maps each code to its description, keeping positions aligned.
func (t *Table) Describe(codes []string) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = t.Description(code)
	}
	return out
}

// Len reports how many codes the table holds.
func (t *Table) Len() int {
	return len(t.descriptions)
}
