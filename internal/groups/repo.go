package groups

import (
	"context"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// Repository handles product group persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product group operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new group row.
func (r *Repository) Create(ctx context.Context, dto CreateProductGroupDTO) (*models.ProductGroup, error) {
	group := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// List returns groups, newest first, optionally scoped to a creator.
func (r *Repository) List(ctx context.Context, createdBy *int64) ([]models.ProductGroup, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if createdBy != nil {
		query = query.Where("created_by = ?", *createdBy)
	}
	var rows []models.ProductGroup
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByStatus returns groups in the given lifecycle state, newest first.
func (r *Repository) ListByStatus(ctx context.Context, status enums.GroupStatus) ([]models.ProductGroup, error) {
	var rows []models.ProductGroup
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a group by id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.ProductGroup, error) {
	var group models.ProductGroup
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// UpdateStatus moves the group to the given state, provided it is still in
// the state the caller validated against. Zero rows affected means a
// concurrent writer got there first.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to enums.GroupStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ProductGroup{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
