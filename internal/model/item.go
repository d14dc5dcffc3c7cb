package model

import (
	"time"
)

// Item represents one sellable (card_id x rarity) catalog entry.
type Item struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	CardID           *string   `json:"card_id" gorm:"type:varchar(100);uniqueIndex:uniq_card_id_rare"`
	Rare             string    `json:"rare" gorm:"type:varchar(100);not null;uniqueIndex:uniq_card_id_rare"`
	Stock            int       `json:"stock" gorm:"not null;default:0"`
	Category         string    `json:"category" gorm:"type:varchar(255);index"`
	NameNormalized   string    `json:"-" gorm:"type:varchar(255);index"`
	CardIDNormalized string    `json:"-" gorm:"type:varchar(100);index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName overrides the default so GORM maps onto the existing items table.
func (Item) TableName() string {
	return "items"
}

// CardIDValue returns the card ID or the empty string when unset.
func (i *Item) CardIDValue() string {
	if i.CardID == nil {
		return ""
	}
	return *i.CardID
}
