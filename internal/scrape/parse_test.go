package scrape

import (
	"strings"
	"testing"
)

const samplePage = `<html><body>
<h2>Set list</h2>
<table>
<tr><th>Number</th><th>Name</th><th>Rarity</th></tr>
<tr><td>SUDA-JP001</td><td><a href="/card/1">青眼の白龍</a></td><td>ウルトラレア</td></tr>
<tr><td>SUDA-JP002</td><td>Dark Magician</td><td>SR</td></tr>
<tr><td>SUDA-JP003</td><td>Promo Card</td></tr>
<tr><td>not a code</td><td>Navigation row</td><td>x</td></tr>
<tr><td>SUDA-JP004</td><td></td><td>N</td></tr>
</table>
<table>
<tr><td>RC04-JP008</td><td>Reprint</td><td>シークレット</td></tr>
</table>
</body></html>`

func TestParseCards(t *testing.T) {
	cards, err := ParseCards(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	want := []Card{
		{CardID: "SUDA-JP001", Name: "青眼の白龍", Rare: "ウルトラレア"},
		{CardID: "SUDA-JP002", Name: "Dark Magician", Rare: "SR"},
		{CardID: "SUDA-JP003", Name: "Promo Card"},
		{CardID: "RC04-JP008", Name: "Reprint", Rare: "シークレット"},
	}
	if len(cards) != len(want) {
		t.Fatalf("cards = %d, want %d: %+v", len(cards), len(want), cards)
	}
	for i, w := range want {
		if cards[i] != w {
			t.Errorf("card %d = %+v, want %+v", i, cards[i], w)
		}
	}
}

func TestParseCardsNoTables(t *testing.T) {
	cards, err := ParseCards(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("cards = %+v, want none", cards)
	}
}

func TestCardIDPattern(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"SUDA-JP001", true},
		{"RC04-JP008", true},
		{"20TH-JPC01", true},
		{"SUDA", false},
		{"SUDA-", false},
		{"TOOLONGPREFIX-JP001", false},
		{"SUDA-JP 001", false},
	}
	for _, tt := range tests {
		if got := cardIDPattern.MatchString(tt.in); got != tt.want {
			t.Errorf("cardIDPattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
