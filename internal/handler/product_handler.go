package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/store"
	"github.com/crosayo/cardstock/pkg/database"
	"github.com/crosayo/cardstock/pkg/logger"
)

// ProductRequest defines the structure for product master create/update
// requests. ReleaseDate uses YYYY-MM-DD; an empty string clears the date
// and with it the era.
type ProductRequest struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	ReleaseDate   string `json:"release_date"`
	ShowInSidebar *bool  `json:"show_in_sidebar"`
}

func (r *ProductRequest) releaseDate() (*time.Time, error) {
	if r.ReleaseDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", r.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListProducts handles retrieving the whole product master
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := store.NewProducts(database.GetDB()).List()
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve products"})
	}

	log.Info("Products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := store.NewProducts(database.GetDB()).Get(uint(id))
	if err != nil {
		log.Error("Failed to fetch product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve product"})
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product master row
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "release_date must be YYYY-MM-DD"})
	}

	products := store.NewProducts(database.GetDB())
	existing, err := products.FindByName(req.Name)
	if err != nil {
		log.Error("Duplicate check failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}
	if existing != nil {
		log.Warn("Product name already exists", zap.String("name", req.Name))
		return c.JSON(http.StatusConflict, echo.Map{"error": "a product with this name already exists"})
	}

	product := model.Product{
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		ReleaseDate:   releaseDate,
		ShowInSidebar: req.ShowInSidebar == nil || *req.ShowInSidebar,
	}
	if err := products.Create(&product); err != nil {
		log.Error("Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles editing a product master row. The era is recomputed
// whenever the release date changes.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "release_date must be YYYY-MM-DD"})
	}

	products := store.NewProducts(database.GetDB())
	product, err := products.Get(uint(id))
	if err != nil {
		log.Error("Failed to fetch product for update", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	if req.Name != product.Name {
		existing, err := products.FindByName(req.Name)
		if err != nil {
			log.Error("Duplicate check failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
		}
		if existing != nil && existing.ID != product.ID {
			log.Warn("Product name already exists", zap.String("name", req.Name))
			return c.JSON(http.StatusConflict, echo.Map{"error": "a product with this name already exists"})
		}
	}

	product.Name = req.Name
	product.DisplayName = req.DisplayName
	product.ReleaseDate = releaseDate
	if req.ShowInSidebar != nil {
		product.ShowInSidebar = *req.ShowInSidebar
	}

	if err := products.Save(product); err != nil {
		log.Error("Failed to update product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
	}

	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product master row. Catalog entries keep their
// category string; nothing cascades.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	deleted, err := store.NewProducts(database.GetDB()).Delete(uint(id))
	if err != nil {
		log.Error("Failed to delete product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete product"})
	}
	if deleted == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	log.Info("Product deleted", zap.Uint64("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// CheckCategories reports item categories without a product row and product
// rows no item references
func CheckCategories(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	check, err := store.NewProducts(db).CheckCategories(store.New(db))
	if err != nil {
		log.Error("Category check failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to check categories"})
	}

	log.Info("Category check finished",
		zap.Int("dangling_categories", len(check.DanglingCategories)),
		zap.Int("empty_products", len(check.EmptyProducts)))
	return c.JSON(http.StatusOK, check)
}
