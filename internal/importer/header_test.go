package importer

import (
	"errors"
	"testing"
)

func TestResolveHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    FieldMapping
	}{
		{
			name:    "canonical english",
			headers: []string{"name", "card_id", "rare", "stock", "category"},
			want:    FieldMapping{FieldName: 0, FieldCardID: 1, FieldRare: 2, FieldStock: 3, FieldCategory: 4},
		},
		{
			name:    "japanese synonyms",
			headers: []string{"名前", "レア度"},
			want:    FieldMapping{FieldName: 0, FieldRare: 1},
		},
		{
			name:    "mixed case",
			headers: []string{"Name", "RARE", "Stock"},
			want:    FieldMapping{FieldName: 0, FieldRare: 1, FieldStock: 2},
		},
		{
			name:    "surrounding whitespace",
			headers: []string{" 名称 ", "レアリティ", " 在庫数 "},
			want:    FieldMapping{FieldName: 0, FieldRare: 1, FieldStock: 2},
		},
		{
			name:    "first match wins on duplicates",
			headers: []string{"name", "名前", "rare"},
			want:    FieldMapping{FieldName: 0, FieldRare: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveHeaders(tt.headers)
			if err != nil {
				t.Fatalf("ResolveHeaders(%v) error: %v", tt.headers, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("mapping = %v, want %v", got, tt.want)
			}
			for f, idx := range tt.want {
				if got[f] != idx {
					t.Errorf("field %s -> %d, want %d", f, got[f], idx)
				}
			}
		})
	}
}

func TestResolveHeadersMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		missing []string
	}{
		{"unrecognized headers", []string{"foo", "bar"}, []string{"name", "rare"}},
		{"name only", []string{"名前", "在庫"}, []string{"rare"}},
		{"rare only", []string{"rare", "stock"}, []string{"name"}},
		{"empty header row", nil, []string{"name", "rare"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveHeaders(tt.headers)
			var herr *HeaderValidationError
			if !errors.As(err, &herr) {
				t.Fatalf("ResolveHeaders(%v) error = %v, want *HeaderValidationError", tt.headers, err)
			}
			if len(herr.Missing) != len(tt.missing) {
				t.Fatalf("missing = %v, want %v", herr.Missing, tt.missing)
			}
			for i, m := range tt.missing {
				if herr.Missing[i] != m {
					t.Errorf("missing[%d] = %q, want %q", i, herr.Missing[i], m)
				}
			}
		})
	}
}

func TestFieldMappingValue(t *testing.T) {
	m := FieldMapping{FieldName: 0, FieldRare: 1, FieldStock: 2}
	row := []string{" Blue-Eyes ", "UR"}

	if got := m.Value(row, FieldName); got != "Blue-Eyes" {
		t.Errorf("name = %q, want trimmed %q", got, "Blue-Eyes")
	}
	if got := m.Value(row, FieldStock); got != "" {
		t.Errorf("out-of-range column = %q, want empty", got)
	}
	if got := m.Value(row, FieldCategory); got != "" {
		t.Errorf("unresolved field = %q, want empty", got)
	}
}
