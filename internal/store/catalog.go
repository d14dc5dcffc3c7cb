// Package store wraps all catalog persistence behind GORM.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/normalize"
	"github.com/crosayo/cardstock/internal/rarity"
)

// Catalog is the items-table store. All methods run against the *gorm.DB the
// Catalog was built with, so callers control transaction scope by passing a
// transaction handle to New.
type Catalog struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// FindByNaturalKey looks up an entry by (card_id, rarity). A nil item with a
// nil error means no match.
func (c *Catalog) FindByNaturalKey(cardID, rare string) (*model.Item, error) {
	var item model.Item
	err := c.db.Where("card_id = ? AND rare = ?", cardID, rare).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert creates a new catalog entry, filling the normalized search columns.
func (c *Catalog) Insert(item *model.Item) error {
	item.NameNormalized = normalize.ForSearch(item.Name)
	item.CardIDNormalized = normalize.ForSearch(item.CardIDValue())
	return c.db.Create(item).Error
}

// UpdateInfo rewrites name and category of an existing entry. Rarity,
// card_id and stock are immutable on this path; re-imports must never
// clobber hand-adjusted stock counts.
func (c *Catalog) UpdateInfo(id uint, name, category string) error {
	return c.db.Model(&model.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":            name,
		"category":        category,
		"name_normalized": normalize.ForSearch(name),
	}).Error
}

// Save persists a full manual edit, refreshing the normalized columns.
func (c *Catalog) Save(item *model.Item) error {
	item.NameNormalized = normalize.ForSearch(item.Name)
	item.CardIDNormalized = normalize.ForSearch(item.CardIDValue())
	return c.db.Save(item).Error
}

// Get fetches one entry by id. Nil with nil error when absent.
func (c *Catalog) Get(id uint) (*model.Item, error) {
	var item model.Item
	err := c.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// NaturalKeyTaken reports whether another entry (excluding excludeID) already
// occupies (card_id, rarity). Entries without a card_id never collide.
func (c *Catalog) NaturalKeyTaken(cardID *string, rare string, excludeID uint) (bool, error) {
	if cardID == nil || *cardID == "" {
		return false, nil
	}
	var count int64
	err := c.db.Model(&model.Item{}).
		Where("card_id = ? AND rare = ? AND id <> ?", *cardID, rare, excludeID).
		Count(&count).Error
	return count > 0, err
}

// SetStock writes an absolute stock count. Returns false when the value
// already matched and no write happened.
func (c *Catalog) SetStock(id uint, stock int) (bool, error) {
	item, err := c.Get(id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, gorm.ErrRecordNotFound
	}
	if item.Stock == stock {
		return false, nil
	}
	return true, c.db.Model(&model.Item{}).Where("id = ?", id).Update("stock", stock).Error
}

// AdjustStock applies a +1/-1 delta, flooring at zero.
func (c *Catalog) AdjustStock(id uint, delta int) (*model.Item, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	next := item.Stock + delta
	if next < 0 {
		next = 0
	}
	if next == item.Stock {
		return item, nil
	}
	if err := c.db.Model(&model.Item{}).Where("id = ?", id).Update("stock", next).Error; err != nil {
		return nil, err
	}
	item.Stock = next
	return item, nil
}

// DeleteByIDs hard-deletes the given entries and reports how many rows went.
func (c *Catalog) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := c.db.Delete(&model.Item{}, ids)
	return res.RowsAffected, res.Error
}

// DeleteZeroStock removes every entry whose stock is zero.
func (c *Catalog) DeleteZeroStock() (int64, error) {
	res := c.db.Where("stock = 0").Delete(&model.Item{})
	return res.RowsAffected, res.Error
}

// DistinctCategories lists the non-empty category strings present in items.
func (c *Catalog) DistinctCategories() ([]string, error) {
	var categories []string
	err := c.db.Model(&model.Item{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// DistinctRarities lists the non-empty rarity strings present in items.
func (c *Catalog) DistinctRarities() ([]string, error) {
	var rarities []string
	err := c.db.Model(&model.Item{}).
		Where("rare IS NOT NULL AND rare <> ''").
		Distinct("rare").
		Order("rare").
		Pluck("rare", &rarities).Error
	return rarities, err
}

// UnifyRarities rewrites every stored rarity that matches a synonym spelling
// to its canonical code, walking the conversion table in order. Returns the
// total number of rows rewritten.
func (c *Catalog) UnifyRarities() (int64, error) {
	var total int64
	for _, syn := range rarity.Synonyms {
		res := c.db.Model(&model.Item{}).
			Where("LOWER(rare) = LOWER(?) AND rare <> ?", syn.Key, syn.Code).
			Update("rare", syn.Code)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}
