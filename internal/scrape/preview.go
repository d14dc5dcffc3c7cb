package scrape

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// PreviewCache holds parsed scrape results between the preview and confirm
// steps, keyed by an opaque token with an explicit expiry. This replaces
// keeping the parsed list in session state.
type PreviewCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]previewEntry
	now     func() time.Time
}

type previewEntry struct {
	cards     []Card
	sourceURL string
	expires   time.Time
}

func NewPreviewCache(ttl time.Duration) *PreviewCache {
	return &PreviewCache{
		ttl:     ttl,
		entries: make(map[string]previewEntry),
		now:     time.Now,
	}
}

// Put stores a parsed result and returns its token.
func (p *PreviewCache) Put(sourceURL string, cards []Card) string {
	token := uuid.New().String()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune()
	p.entries[token] = previewEntry{
		cards:     cards,
		sourceURL: sourceURL,
		expires:   p.now().Add(p.ttl),
	}
	return token
}

// Take retrieves and removes a preview. Expired or unknown tokens report
// ok=false.
func (p *PreviewCache) Take(token string) ([]Card, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.entries[token]
	if !ok {
		return nil, "", false
	}
	delete(p.entries, token)
	if p.now().After(entry.expires) {
		return nil, "", false
	}
	return entry.cards, entry.sourceURL, true
}

// prune drops expired entries. Caller holds the lock.
func (p *PreviewCache) prune() {
	now := p.now()
	for token, entry := range p.entries {
		if now.After(entry.expires) {
			delete(p.entries, token)
		}
	}
}
