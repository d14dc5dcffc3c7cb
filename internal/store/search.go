package store

import (
	"fmt"
	"strings"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/normalize"
)

// SearchParams narrows and orders an item listing.
type SearchParams struct {
	Keyword   string
	ShowZero  bool
	SortKey   string
	SortOrder string
	Page      int
	PerPage   int
}

// ItemRow is one listing row: the item plus set metadata joined from the
// product master by category name.
type ItemRow struct {
	model.Item
	ReleaseDate   *string `json:"release_date"`
	Era           *int    `json:"era"`
	DisplayName   *string `json:"display_name"`
	ShowInSidebar *bool   `json:"show_in_sidebar"`
}

// sortColumns whitelists user-supplied sort keys against injection.
var sortColumns = map[string]string{
	"name":         "items.name",
	"card_id":      "items.card_id",
	"rare":         "items.rare",
	"stock":        "items.stock",
	"id":           "items.id",
	"category":     "items.category",
	"release_date": "products.release_date",
}

// Search lists catalog entries with keyword filtering over the normalized
// columns, optional zero-stock hiding, whitelisted sorting and pagination.
// Returns the page of rows and the total match count.
func (c *Catalog) Search(p SearchParams) ([]ItemRow, int64, error) {
	q := c.db.Model(&model.Item{}).
		Select("items.*, products.release_date, products.era, products.display_name, products.show_in_sidebar").
		Joins("LEFT JOIN products ON items.category = products.name")

	if !p.ShowZero {
		q = q.Where("items.stock > 0")
	}
	if kw := normalize.ForSearch(p.Keyword); kw != "" {
		like := "%" + kw + "%"
		q = q.Where(
			"items.name_normalized LIKE ? OR items.card_id_normalized LIKE ? OR LOWER(items.rare) LIKE ? OR LOWER(items.category) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[p.SortKey]
	if !ok {
		column = "products.release_date"
	}
	order := "DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		order = "ASC"
	}
	if column == "products.release_date" {
		q = q.Order(fmt.Sprintf("products.release_date %s NULLS LAST", order)).Order("items.name ASC")
	} else {
		q = q.Order(fmt.Sprintf("%s %s", column, order)).Order("items.name ASC")
	}

	if p.PerPage > 0 {
		page := p.Page
		if page < 1 {
			page = 1
		}
		q = q.Limit(p.PerPage).Offset((page - 1) * p.PerPage)
	}

	var rows []ItemRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByCategory pages through items whose category contains the keyword,
// for the batch stock screen.
func (c *Catalog) ListByCategory(keyword string, page, perPage int, sortKey, sortOrder string) ([]model.Item, int64, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	q := c.db.Model(&model.Item{}).Where("LOWER(category) LIKE ?", like)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := map[string]string{
		"name": "name", "card_id": "card_id", "rare": "rare", "stock": "stock", "id": "id",
	}[sortKey]
	if !ok {
		column = "name"
	}
	order := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		order = "DESC"
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var items []model.Item
	err := q.Order(fmt.Sprintf("%s %s", column, order)).
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&items).Error
	return items, total, err
}

// ExportAll returns every catalog entry ordered by id for CSV export.
func (c *Catalog) ExportAll() ([]model.Item, error) {
	var items []model.Item
	err := c.db.Order("id").Find(&items).Error
	return items, err
}
