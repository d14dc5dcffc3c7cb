package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crosayo/cardstock/internal/importer"
	"github.com/crosayo/cardstock/internal/middleware"
	"github.com/crosayo/cardstock/internal/store"
	"github.com/crosayo/cardstock/pkg/database"
	"github.com/crosayo/cardstock/pkg/logger"
	"github.com/crosayo/cardstock/prometheus"
)

// ImportCSV imports one or more uploaded CSV catalogs through the
// reconciliation pipeline. Each file is isolated: a broken file never costs
// another file its writes.
func ImportCSV(c echo.Context) error {
	log := logger.FromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		log.Error("Invalid multipart form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid multipart form"})
	}
	files := form.File["csv_files"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no files uploaded"})
	}

	var units []*importer.Unit
	var failed []importer.UnitReport
	for _, fh := range files {
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
			failed = append(failed, importer.UnitReport{
				Unit:   fh.Filename,
				State:  importer.StateHeaderFailed,
				Issues: []string{"only .csv files are accepted"},
			})
			continue
		}
		src, err := fh.Open()
		if err != nil {
			failed = append(failed, importer.UnitReport{
				Unit:   fh.Filename,
				State:  importer.StateHeaderFailed,
				Issues: []string{fmt.Sprintf("open failed: %v", err)},
			})
			continue
		}
		unit, err := importer.ReadUnit(fh.Filename, src)
		src.Close()
		if err != nil {
			log.Warn("Unit unreadable",
				zap.String("unit", fh.Filename), zap.Error(err))
			failed = append(failed, importer.UnitReport{
				Unit:   fh.Filename,
				State:  importer.StateHeaderFailed,
				Issues: []string{err.Error()},
			})
			continue
		}
		units = append(units, unit)
	}

	coordinator := importer.NewCoordinator(store.New(database.GetDB()), log)
	report := coordinator.Run(units)
	for _, f := range failed {
		report.Units = append(report.Units, f)
		report.UnitsProcessed++
	}

	recordImportMetrics(report)
	log.Info("CSV import finished",
		zap.String("username", middleware.UsernameFromContext(c)),
		zap.Int("units", report.UnitsProcessed),
		zap.Int("rows", report.RowsProcessed),
		zap.Int("added", report.Added),
		zap.Int("updated", report.Updated),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", report.Errors))
	return c.JSON(http.StatusOK, report)
}

// ExportCSV streams the whole catalog as BOM-prefixed UTF-8 CSV
func ExportCSV(c echo.Context) error {
	log := logger.FromContext(c)

	items, err := store.New(database.GetDB()).ExportAll()
	if err != nil {
		log.Error("Failed to fetch items for export", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to export catalog"})
	}

	filename := fmt.Sprintf("cardstock_backup_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := importer.WriteExport(c.Response(), items); err != nil {
		log.Error("Failed to write export", zap.Error(err))
		return err
	}

	log.Info("CSV export generated",
		zap.String("filename", filename),
		zap.Int("items", len(items)))
	return nil
}

// UnifyRarities rewrites every stored rarity matching a known synonym to its
// canonical code
func UnifyRarities(c echo.Context) error {
	log := logger.FromContext(c)

	var updated int64
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var terr error
		updated, terr = store.New(tx).UnifyRarities()
		return terr
	})
	if err != nil {
		log.Error("Rarity unification failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to unify rarities"})
	}

	prometheus.RecordItemOperation("unify_rarities")
	log.Info("Rarities unified",
		zap.String("username", middleware.UsernameFromContext(c)),
		zap.Int64("updated", updated))
	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}

// ListRarities reports the distinct rarity strings currently stored, for the
// unification screen
func ListRarities(c echo.Context) error {
	log := logger.FromContext(c)

	rarities, err := store.New(database.GetDB()).DistinctRarities()
	if err != nil {
		log.Error("Failed to list rarities", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve rarities"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rarities": rarities})
}

func recordImportMetrics(report *importer.Report) {
	prometheus.RecordImportRow(string(importer.OutcomeAdded), report.Added)
	prometheus.RecordImportRow(string(importer.OutcomeUpdated), report.Updated)
	prometheus.RecordImportRow(string(importer.OutcomeUnchanged), report.Unchanged)
	prometheus.RecordImportRow(string(importer.OutcomeSkipped), report.Skipped)
	prometheus.RecordImportRow(string(importer.OutcomeError), report.Errors)
	for _, u := range report.Units {
		prometheus.RecordImportUnit(string(u.State))
	}
}
