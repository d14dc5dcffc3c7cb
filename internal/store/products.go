package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/normalize"
)

// Products is the product-master store.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

// List returns all products, newest release first, undated last.
func (p *Products) List() ([]model.Product, error) {
	var products []model.Product
	err := p.db.Order("release_date DESC NULLS LAST, name ASC").Find(&products).Error
	return products, err
}

// Get fetches one product by id. Nil with nil error when absent.
func (p *Products) Get(id uint) (*model.Product, error) {
	var product model.Product
	err := p.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName looks a product up by name, case/width-insensitively.
func (p *Products) FindByName(name string) (*model.Product, error) {
	var products []model.Product
	if err := p.db.Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		if normalize.Equal(products[i].Name, name) {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Create inserts a product, recomputing its era from the release date.
func (p *Products) Create(product *model.Product) error {
	product.RecomputeEra()
	return p.db.Create(product).Error
}

// Save persists an edit, recomputing the era from the release date.
func (p *Products) Save(product *model.Product) error {
	product.RecomputeEra()
	return p.db.Save(product).Error
}

// Delete removes a product row. Items keep their category string; deletion
// never cascades into the catalog.
func (p *Products) Delete(id uint) (int64, error) {
	res := p.db.Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

// CategoryCheck is the consistency report between item categories and the
// product master.
type CategoryCheck struct {
	DanglingCategories []string `json:"dangling_categories"`
	EmptyProducts      []string `json:"empty_products"`
}

// CheckCategories reports item categories that have no matching product row
// and products no item references. Matching is case/width-insensitive, the
// same rule the listing join relies on.
func (p *Products) CheckCategories(catalog *Catalog) (*CategoryCheck, error) {
	categories, err := catalog.DistinctCategories()
	if err != nil {
		return nil, err
	}
	products, err := p.List()
	if err != nil {
		return nil, err
	}

	productNames := make(map[string]string, len(products))
	for _, pr := range products {
		productNames[normalize.ForSearch(pr.Name)] = pr.Name
	}
	categoryNames := make(map[string]bool, len(categories))
	for _, cat := range categories {
		categoryNames[normalize.ForSearch(cat)] = true
	}

	check := &CategoryCheck{}
	for _, cat := range categories {
		if _, ok := productNames[normalize.ForSearch(cat)]; !ok {
			check.DanglingCategories = append(check.DanglingCategories, cat)
		}
	}
	for _, pr := range products {
		if !categoryNames[normalize.ForSearch(pr.Name)] {
			check.EmptyProducts = append(check.EmptyProducts, pr.Name)
		}
	}
	return check, nil
}
