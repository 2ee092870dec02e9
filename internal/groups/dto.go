package groups

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// ProductGroupDTO is the API shape of a bulk-buy offer.
type ProductGroupDTO struct {
	ID                 int64             `json:"id"`
	Product            string            `json:"product"`
	Quantity           string            `json:"quantity"`
	Price              string            `json:"price,omitempty"`
	ActualRate         string            `json:"actualRate,omitempty"`
	FinalRate          string            `json:"finalRate,omitempty"`
	DiscountPercentage string            `json:"discountPercentage,omitempty"`
	Location           string            `json:"location"`
	Latitude           string            `json:"latitude,omitempty"`
	Longitude          string            `json:"longitude,omitempty"`
	Deadline           time.Time         `json:"deadline"`
	Status             enums.GroupStatus `json:"status"`
	CreatedBy          int64             `json:"createdBy"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// CreateProductGroupDTO holds the creation payload. Rate fields pass
// through untouched.
type CreateProductGroupDTO struct {
	Product            string    `json:"product" validate:"required"`
	Quantity           string    `json:"quantity" validate:"required"`
	Price              string    `json:"price"`
	ActualRate         string    `json:"actualRate"`
	FinalRate          string    `json:"finalRate"`
	DiscountPercentage string    `json:"discountPercentage"`
	Location           string    `json:"location" validate:"required"`
	Latitude           string    `json:"latitude"`
	Longitude          string    `json:"longitude"`
	Deadline           time.Time `json:"deadline" validate:"required"`
	CreatedBy          int64     `json:"createdBy" validate:"required,gt=0"`
}

// UpdateStatusDTO carries the requested lifecycle move.
type UpdateStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

// ToModel prepares the GORM model. Status always starts pending.
func (c CreateProductGroupDTO) ToModel() *models.ProductGroup {
	return &models.ProductGroup{
		Product:            c.Product,
		Quantity:           c.Quantity,
		Price:              c.Price,
		ActualRate:         c.ActualRate,
		FinalRate:          c.FinalRate,
		DiscountPercentage: c.DiscountPercentage,
		Location:           c.Location,
		Latitude:           c.Latitude,
		Longitude:          c.Longitude,
		Deadline:           c.Deadline,
		Status:             enums.GroupStatusPending,
		CreatedBy:          c.CreatedBy,
	}
}

// FromModel maps the persisted group into its API shape.
func FromModel(m *models.ProductGroup) *ProductGroupDTO {
	if m == nil {
		return nil
	}
	return &ProductGroupDTO{
		ID:                 m.ID,
		Product:            m.Product,
		Quantity:           m.Quantity,
		Price:              m.Price,
		ActualRate:         m.ActualRate,
		FinalRate:          m.FinalRate,
		DiscountPercentage: m.DiscountPercentage,
		Location:           m.Location,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		Deadline:           m.Deadline,
		Status:             m.Status,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
	}
}

func fromModels(rows []models.ProductGroup) []ProductGroupDTO {
	out := make([]ProductGroupDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
