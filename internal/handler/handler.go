package handler

import (
	"github.com/crosayo/cardstock/internal/auth"
	"github.com/crosayo/cardstock/internal/scrape"
)

var (
	users    *auth.UserFile
	scraper  *scrape.Scraper
	previews *scrape.PreviewCache
)

// Initialize wires the handler package's collaborators. Called once from
// main before routes are registered.
func Initialize(u *auth.UserFile, s *scrape.Scraper, p *scrape.PreviewCache) {
	users = u
	scraper = s
	previews = p
}
