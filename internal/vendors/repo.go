package vendors

import (
	"context"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
)

// Repository handles vendor persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to vendor operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new vendor row. Duplicate external auth ids surface as
// the driver's unique violation.
func (r *Repository) Create(ctx context.Context, dto CreateVendorDTO) (*models.Vendor, error) {
	vendor := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return nil, err
	}
	return vendor, nil
}

// List returns all vendors, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Vendor, error) {
	var rows []models.Vendor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a vendor by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindByExternalAuthID loads the vendor bound to the given auth account.
func (r *Repository) FindByExternalAuthID(ctx context.Context, externalAuthID string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "external_auth_id = ?", externalAuthID).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Update saves the provided vendor.
func (r *Repository) Update(ctx context.Context, vendor *models.Vendor) error {
	if vendor == nil {
		return gorm.ErrInvalidData
	}
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete removes the vendor row and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
