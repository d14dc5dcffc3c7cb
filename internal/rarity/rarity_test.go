package rarity

import (
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ultra", "UR"},
		{"Ultra", "UR"},
		{"ULTRA", "UR"},
		{"ウルトラ", "UR"},
		{"ウルトラレア", "UR"},
		{"secret", "SE"},
		{"シークレット", "SE"},
		{"normal", "N"},
		{"nomal", "N"},
		{"relief", "UL"},
		{"レリーフ", "UL"},
		{"20th secret", "20thSE"},
		{"quarter century secret", "QCSE"},
		// already-canonical codes pass through untouched
		{"UR", "UR"},
		{"N", "N"},
		// unknown labels survive unchanged
		{"mystery rare", "mystery rare"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.in); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDefined(t *testing.T) {
	for _, code := range []string{"N", "UR", "QCSE", "不明", "その他"} {
		if !IsDefined(code) {
			t.Errorf("IsDefined(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "shiny", "ultra"} {
		if IsDefined(code) {
			t.Errorf("IsDefined(%q) = true, want false", code)
		}
	}
}

func TestSynonymsMapToDefinedCodes(t *testing.T) {
	for _, s := range Synonyms {
		if !IsDefined(s.Code) {
			t.Errorf("synonym %q maps to undefined code %q", s.Key, s.Code)
		}
	}
}

func TestSynonymKeysUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range Synonyms {
		if prev, ok := seen[s.Key]; ok && prev != s.Code {
			t.Errorf("key %q maps to both %q and %q", s.Key, prev, s.Code)
		}
		seen[s.Key] = s.Code
	}
}
