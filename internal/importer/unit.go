package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Unit is one parsed input unit: a header row plus data rows, with a
// category fallback derived from the source file's name.
type Unit struct {
	Name             string
	CategoryFallback string
	Headers          []string
	Rows             [][]string
}

// ReadUnit parses a CSV stream into a Unit. The stream must be UTF-8; a
// leading byte-order mark is tolerated and stripped. Decoding failure yields
// an *EncodingError before any row is touched.
func ReadUnit(name string, r io.Reader) (*Unit, error) {
	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("read unit %q: %w", name, err)
	}
	if !utf8.Valid(data) {
		return nil, &EncodingError{Unit: name}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse unit %q: %w", name, err)
	}

	unit := &Unit{
		Name:             name,
		CategoryFallback: categoryFromFilename(name),
	}
	if len(records) > 0 {
		unit.Headers = records[0]
		unit.Rows = records[1:]
	}
	return unit, nil
}

// UnitFromRecords builds an in-memory unit from already-canonical records,
// used by the scrape-import confirm step.
func UnitFromRecords(name, category string, records []Record) *Unit {
	unit := &Unit{
		Name:             name,
		CategoryFallback: category,
		Headers:          []string{"name", "card_id", "rare", "stock", "category"},
	}
	for _, rec := range records {
		unit.Rows = append(unit.Rows, []string{rec.Name, rec.CardID, rec.Rare, rec.Stock, rec.Category})
	}
	return unit
}

func categoryFromFilename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
