package model

import (
	"time"
)

// Product represents one named release/set in the product master table.
// Items reference it loosely through Item.Category matching Product.Name.
type Product struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null;unique"`
	DisplayName   string     `json:"display_name" gorm:"type:varchar(255)"`
	ReleaseDate   *time.Time `json:"release_date" gorm:"type:date"`
	Era           *int       `json:"era" gorm:"index"`
	ShowInSidebar bool       `json:"show_in_sidebar" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName overrides the default so GORM maps onto the existing products table.
func (Product) TableName() string {
	return "products"
}

// RecomputeEra derives the era bucket from the release date. A nil or
// out-of-range date clears the era.
func (p *Product) RecomputeEra() {
	if p.ReleaseDate == nil {
		p.Era = nil
		return
	}
	era, ok := EraForDate(*p.ReleaseDate)
	if !ok {
		p.Era = nil
		return
	}
	n := era.Number
	p.Era = &n
}
