package suppliers

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
)

// Repository handles supplier persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to supplier operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new supplier row. Duplicate external auth ids surface
// as the driver's unique violation.
func (r *Repository) Create(ctx context.Context, dto CreateSupplierDTO) (*models.Supplier, error) {
	supplier := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// List returns all suppliers, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a supplier by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindByExternalAuthID loads the supplier bound to the given auth account.
func (r *Repository) FindByExternalAuthID(ctx context.Context, externalAuthID string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "external_auth_id = ?", externalAuthID).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// SearchByLocation matches suppliers on any of the provided location
// fields. City and state match case-insensitively on substrings, pincode
// exactly.
func (r *Repository) SearchByLocation(ctx context.Context, q LocationQuery) ([]models.Supplier, error) {
	query := r.db.WithContext(ctx)
	var conditions *gorm.DB
	if q.City != "" {
		conditions = r.db.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(q.City)+"%")
	}
	if q.State != "" {
		cond := r.db.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(q.State)+"%")
		if conditions == nil {
			conditions = cond
		} else {
			conditions = conditions.Or(cond)
		}
	}
	if q.Pincode != "" {
		cond := r.db.Where("pincode = ?", q.Pincode)
		if conditions == nil {
			conditions = cond
		} else {
			conditions = conditions.Or(cond)
		}
	}

	var rows []models.Supplier
	if err := query.Where(conditions).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided supplier.
func (r *Repository) Update(ctx context.Context, supplier *models.Supplier) error {
	if supplier == nil {
		return gorm.ErrInvalidData
	}
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes the supplier row and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
