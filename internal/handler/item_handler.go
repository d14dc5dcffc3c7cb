package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/store"
	"github.com/crosayo/cardstock/pkg/database"
	"github.com/crosayo/cardstock/pkg/logger"
	"github.com/crosayo/cardstock/prometheus"
)

// ItemRequest defines the structure for item creation/update requests
type ItemRequest struct {
	Name     string `json:"name"`
	CardID   string `json:"card_id"`
	Rare     string `json:"rare"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
}

// ListItems handles keyword search over the catalog with sorting and paging
func ListItems(c echo.Context) error {
	log := logger.FromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil {
		perPage = 20
	}
	params := store.SearchParams{
		Keyword:   c.QueryParam("keyword"),
		ShowZero:  c.QueryParam("show_zero") == "true" || c.QueryParam("show_zero") == "on",
		SortKey:   c.QueryParam("sort_key"),
		SortOrder: c.QueryParam("sort_order"),
		Page:      page,
		PerPage:   perPage,
	}

	rows, total, err := store.New(database.GetDB()).Search(params)
	if err != nil {
		log.Error("Failed to list items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve items",
		})
	}

	log.Info("Items retrieved",
		zap.String("keyword", params.Keyword),
		zap.Int("count", len(rows)),
		zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"items": rows,
		"total": total,
	})
}

// GetItem handles retrieving a single catalog entry by ID
func GetItem(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	item, err := store.New(database.GetDB()).Get(uint(id))
	if err != nil {
		log.Error("Failed to fetch item", zap.Uint64("item_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve item"})
	}
	if item == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}
	return c.JSON(http.StatusOK, item)
}

// CreateItem handles manual entry of a new catalog entry
func CreateItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.Rare == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and rarity are required"})
	}
	if req.Stock < 0 {
		req.Stock = 0
	}

	catalog := store.New(database.GetDB())

	var cardID *string
	if req.CardID != "" {
		cardID = &req.CardID
		taken, err := catalog.NaturalKeyTaken(cardID, req.Rare, 0)
		if err != nil {
			log.Error("Duplicate check failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create item"})
		}
		if taken {
			log.Warn("Natural key already taken",
				zap.String("card_id", req.CardID), zap.String("rare", req.Rare))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "an entry with this card ID and rarity already exists",
			})
		}
	}

	item := model.Item{
		Name:     req.Name,
		CardID:   cardID,
		Rare:     req.Rare,
		Stock:    req.Stock,
		Category: req.Category,
	}
	if err := catalog.Insert(&item); err != nil {
		log.Error("Failed to create item",
			zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create item"})
	}

	prometheus.RecordItemOperation("create")
	log.Info("Item created",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("rare", item.Rare))
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem handles a full manual edit of a catalog entry
func UpdateItem(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.Rare == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and rarity are required"})
	}
	if req.Stock < 0 {
		req.Stock = 0
	}

	catalog := store.New(database.GetDB())
	item, err := catalog.Get(uint(id))
	if err != nil {
		log.Error("Failed to fetch item for update", zap.Uint64("item_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update item"})
	}
	if item == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	var cardID *string
	if req.CardID != "" {
		cardID = &req.CardID
	}
	if req.Rare != item.Rare || req.CardID != item.CardIDValue() {
		taken, err := catalog.NaturalKeyTaken(cardID, req.Rare, item.ID)
		if err != nil {
			log.Error("Duplicate check failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update item"})
		}
		if taken {
			log.Warn("Natural key already taken",
				zap.String("card_id", req.CardID), zap.String("rare", req.Rare))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "an entry with this card ID and rarity already exists",
			})
		}
	}

	item.Name = req.Name
	item.CardID = cardID
	item.Rare = req.Rare
	item.Stock = req.Stock
	item.Category = req.Category

	if err := catalog.Save(item); err != nil {
		log.Error("Failed to update item", zap.Uint64("item_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update item"})
	}

	prometheus.RecordItemOperation("update")
	log.Info("Item updated",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("rare", item.Rare))
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles deleting a single catalog entry
func DeleteItem(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	deleted, err := store.New(database.GetDB()).DeleteByIDs([]uint{uint(id)})
	if err != nil {
		log.Error("Failed to delete item", zap.Uint64("item_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete item"})
	}
	if deleted == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	prometheus.RecordItemOperation("delete")
	log.Info("Item deleted", zap.Uint64("item_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Item deleted successfully"})
}

// BulkDeleteRequest defines the structure for bulk delete requests
type BulkDeleteRequest struct {
	IDs       []uint `json:"ids"`
	ZeroStock bool   `json:"zero_stock"`
}

// BulkDeleteItems deletes a list of entries, or every zero-stock entry
func BulkDeleteItems(c echo.Context) error {
	log := logger.FromContext(c)

	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	catalog := store.New(database.GetDB())
	var deleted int64
	var err error
	if req.ZeroStock {
		deleted, err = catalog.DeleteZeroStock()
	} else {
		if len(req.IDs) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no item ids given"})
		}
		deleted, err = catalog.DeleteByIDs(req.IDs)
	}
	if err != nil {
		log.Error("Bulk delete failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete items"})
	}

	prometheus.RecordItemOperation("bulk_delete")
	log.Info("Bulk delete finished",
		zap.Bool("zero_stock", req.ZeroStock),
		zap.Int64("deleted", deleted))
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// StockRequest defines the structure for +-1 stock adjustments
type StockRequest struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a +1/-1 stock change, flooring at zero
func AdjustStock(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Delta != 1 && req.Delta != -1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "delta must be +1 or -1"})
	}

	item, err := store.New(database.GetDB()).AdjustStock(uint(id), req.Delta)
	if err != nil {
		log.Error("Failed to adjust stock", zap.Uint64("item_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	prometheus.RecordItemOperation("adjust_stock")
	log.Info("Stock adjusted",
		zap.Uint("item_id", item.ID),
		zap.Int("delta", req.Delta),
		zap.Int("stock", item.Stock))
	return c.JSON(http.StatusOK, item)
}

// BatchStockRequest carries absolute stock values per item id. Values are
// strings so that garbage input degrades to zero with a warning instead of
// failing the whole batch.
type BatchStockRequest struct {
	Updates map[string]string `json:"updates"`
}

// BatchStock applies absolute stock counts to many items at once
func BatchStock(c echo.Context) error {
	log := logger.FromContext(c)

	var req BatchStockRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	keys := make([]string, 0, len(req.Updates))
	for k := range req.Updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	catalog := store.New(database.GetDB())
	updated := 0
	var issues []string
	for _, key := range keys {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			issues = append(issues, "invalid item id "+key)
			continue
		}
		value := req.Updates[key]
		stock, err := strconv.Atoi(value)
		if err != nil {
			log.Warn("Invalid stock value, defaulting to 0",
				zap.String("item_id", key), zap.String("value", value))
			issues = append(issues, "item "+key+": invalid stock value, used 0")
			stock = 0
		}
		if stock < 0 {
			issues = append(issues, "item "+key+": negative stock, used 0")
			stock = 0
		}

		changed, err := catalog.SetStock(uint(id), stock)
		if err != nil {
			log.Warn("Batch stock update failed for item",
				zap.String("item_id", key), zap.Error(err))
			issues = append(issues, "item "+key+": not found or not updatable")
			continue
		}
		if changed {
			updated++
		}
	}

	prometheus.RecordItemOperation("batch_stock")
	log.Info("Batch stock update finished",
		zap.Int("updated", updated),
		zap.Int("issues", len(issues)))
	return c.JSON(http.StatusOK, echo.Map{
		"updated": updated,
		"issues":  issues,
	})
}

// ListByCategory pages items by category keyword for the batch stock screen
func ListByCategory(c echo.Context) error {
	log := logger.FromContext(c)

	keyword := c.QueryParam("category_keyword")
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_keyword is required"})
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil {
		perPage = 20
	}

	items, total, err := store.New(database.GetDB()).ListByCategory(
		keyword, page, perPage, c.QueryParam("sort_key"), c.QueryParam("sort_order"))
	if err != nil {
		log.Error("Failed to list items by category", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve items"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": total,
	})
}
