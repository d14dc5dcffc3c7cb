package scrape

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// cardIDPattern matches print codes like "SUDA-JP001" or "RC04-JP008".
var cardIDPattern = regexp.MustCompile(`^[0-9A-Za-z]{2,8}-[0-9A-Za-z]{2,8}$`)

// ParseCards walks the page's tables and collects rows that look like card
// listings: a print code cell followed by a name cell, with an optional
// rarity cell. Wiki markup drifts, so the parser keys on cell content rather
// than table attributes.
func ParseCards(r io.Reader) ([]Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var cards []Card
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if card, ok := cardFromRow(n); ok {
				cards = append(cards, card)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return cards, nil
}

func cardFromRow(tr *html.Node) (Card, bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if c.Data == "th" {
				return Card{}, false
			}
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	if len(cells) < 2 || !cardIDPattern.MatchString(cells[0]) || cells[1] == "" {
		return Card{}, false
	}
	card := Card{CardID: cells[0], Name: cells[1]}
	if len(cells) >= 3 {
		card.Rare = cells[2]
	}
	return card, true
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
