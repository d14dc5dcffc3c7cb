package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/importer"
	"github.com/crosayo/cardstock/internal/store"
	"github.com/crosayo/cardstock/pkg/database"
	"github.com/crosayo/cardstock/pkg/logger"
	"github.com/crosayo/cardstock/prometheus"
)

// ScrapePreviewRequest names the wiki page to scrape
type ScrapePreviewRequest struct {
	URL string `json:"url"`
}

// ScrapePreview fetches a wiki set page, parses its card table and caches
// the result under a token for the confirm step
func ScrapePreview(c echo.Context) error {
	log := logger.FromContext(c)

	var req ScrapePreviewRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
	}

	cards, err := scraper.FetchCards(c.Request().Context(), req.URL)
	if err != nil {
		prometheus.RecordScrapeRequest("error")
		log.Error("Scrape failed", zap.String("url", req.URL), zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to scrape page"})
	}

	token := previews.Put(req.URL, cards)
	prometheus.RecordScrapeRequest("ok")
	log.Info("Scrape preview cached",
		zap.String("url", req.URL),
		zap.Int("cards", len(cards)),
		zap.String("token", token))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"cards": cards,
	})
}

// ScrapeConfirmRequest confirms a cached preview into the catalog
type ScrapeConfirmRequest struct {
	Token    string `json:"token"`
	Category string `json:"category"`
}

// ScrapeConfirm runs a cached preview through the reconciliation pipeline as
// a single input unit
func ScrapeConfirm(c echo.Context) error {
	log := logger.FromContext(c)

	var req ScrapeConfirmRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Token == "" || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token and category are required"})
	}

	cards, sourceURL, ok := previews.Take(req.Token)
	if !ok {
		log.Warn("Unknown or expired preview token", zap.String("token", req.Token))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "preview expired or not found"})
	}

	records := make([]importer.Record, 0, len(cards))
	for i, card := range cards {
		records = append(records, importer.Record{
			Line:   i + 2,
			Name:   card.Name,
			CardID: card.CardID,
			Rare:   card.Rare,
			Stock:  "0",
		})
	}
	unit := importer.UnitFromRecords(sourceURL, req.Category, records)

	report := importer.NewCoordinator(store.New(database.GetDB()), log).Run([]*importer.Unit{unit})
	recordImportMetrics(report)

	log.Info("Scrape import finished",
		zap.String("url", sourceURL),
		zap.String("category", req.Category),
		zap.Int("added", report.Added),
		zap.Int("updated", report.Updated),
		zap.Int("unchanged", report.Unchanged))
	return c.JSON(http.StatusOK, report)
}
