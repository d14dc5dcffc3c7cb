package normalize

import (
	"testing"
)

func TestForSearch(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"ascii lowercased", "Blue-Eyes", "blue-eyes"},
		{"fullwidth alphanumerics folded", "ＡＢＣ１２３", "abc123"},
		{"fullwidth mixed with ascii", "ＳＵＤＡ-JP001", "suda-jp001"},
		{"surrounding whitespace trimmed", "  card name  ", "card name"},
		{"kanji untouched", "青眼の白龍", "青眼の白龍"},
		{"katakana stays katakana", "ブルーアイズ", "ブルーアイズ"},
		{"halfwidth katakana widened", "ﾌﾞﾙｰｱｲｽﾞ", "ブルーアイズ"},
		{"fullwidth space trimmed", "　カード　", "カード"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForSearch(tt.in); got != tt.want {
				t.Errorf("ForSearch(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForSearchIdempotent(t *testing.T) {
	inputs := []string{
		"", "Blue-Eyes", "ＡＢＣ１２３", "  card name  ",
		"青眼の白龍", "ﾌﾞﾙｰｱｲｽﾞ", "ＵＬＴＲＡ Rare",
	}
	for _, in := range inputs {
		once := ForSearch(in)
		if twice := ForSearch(once); twice != once {
			t.Errorf("ForSearch not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ＵＬＴＲＡ", "ultra", true},
		{"  abc ", "ABC", true},
		{"ブルーアイズ", "ﾌﾞﾙｰｱｲｽﾞ", true},
		{"abc", "abd", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
