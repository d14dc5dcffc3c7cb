package importer

import (
	"strings"
)

// Field names a canonical column independent of the literal header spelling
// used by any given source file.
type Field string

const (
	FieldName     Field = "name"
	FieldCardID   Field = "card_id"
	FieldRare     Field = "rare"
	FieldStock    Field = "stock"
	FieldCategory Field = "category"
)

// requiredFields must resolve for a unit to be processed at all.
var requiredFields = []Field{FieldName, FieldRare}

// headerSynonyms maps each canonical field to the header spellings accepted
// for it, across languages. Matching is case-insensitive.
var headerSynonyms = []struct {
	Field Field
	Keys  []string
}{
	{FieldName, []string{"name", "名前", "名称"}},
	{FieldCardID, []string{"card_id", "カードid", "型番"}},
	{FieldRare, []string{"rare", "レアリティ", "レア度"}},
	{FieldStock, []string{"stock", "在庫", "在庫数"}},
	{FieldCategory, []string{"category", "カテゴリ", "分類"}},
}

// FieldMapping maps canonical fields to column positions in a unit's rows.
type FieldMapping map[Field]int

// Has reports whether the field resolved to a column.
func (m FieldMapping) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Value extracts the field from a row, trimmed. Unresolved or out-of-range
// fields yield the empty string.
func (m FieldMapping) Value(row []string, f Field) string {
	idx, ok := m[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ResolveHeaders maps the literal headers of a unit onto canonical fields.
// The first header matching any synonym of a field wins. name and rare are
// mandatory; a *HeaderValidationError naming the missing fields and listing
// the headers actually found is returned when either is absent.
func ResolveHeaders(headers []string) (FieldMapping, error) {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	mapping := make(FieldMapping)
	for _, syn := range headerSynonyms {
		for i, h := range lowered {
			if matchesAny(h, syn.Keys) {
				mapping[syn.Field] = i
				break
			}
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if !mapping.Has(f) {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return nil, &HeaderValidationError{Missing: missing, Found: headers}
	}
	return mapping, nil
}

func matchesAny(header string, keys []string) bool {
	for _, k := range keys {
		if header == k {
			return true
		}
	}
	return false
}
