package products

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
)

// ProductDTO is the API shape of a catalog item.
type ProductDTO struct {
	ID            int64     `json:"id"`
	SupplierID    *int64    `json:"supplierId,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	StockQuantity int       `json:"stockQuantity"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateProductDTO holds the creation payload.
type CreateProductDTO struct {
	SupplierID    *int64  `json:"supplierId"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price" validate:"gte=0"`
	Unit          string  `json:"unit"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	Image         string  `json:"image"`
}

// UpdateProductDTO replaces the mutable catalog fields.
type UpdateProductDTO struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price" validate:"gte=0"`
	Unit          string  `json:"unit"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	Image         string  `json:"image"`
}

// ToModel prepares the GORM model, supplying the unit default.
func (c CreateProductDTO) ToModel() *models.Product {
	unit := c.Unit
	if unit == "" {
		unit = "kg"
	}
	return &models.Product{
		SupplierID:    c.SupplierID,
		Name:          c.Name,
		Description:   c.Description,
		Category:      c.Category,
		Price:         c.Price,
		Unit:          unit,
		StockQuantity: c.StockQuantity,
		Image:         c.Image,
	}
}

// FromModel maps the persisted product into its API shape.
func FromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:            m.ID,
		SupplierID:    m.SupplierID,
		Name:          m.Name,
		Description:   m.Description,
		Category:      m.Category,
		Price:         m.Price,
		Unit:          m.Unit,
		StockQuantity: m.StockQuantity,
		Image:         m.Image,
		CreatedAt:     m.CreatedAt,
	}
}

func fromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
