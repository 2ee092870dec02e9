package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// orderRow is an order joined with the vendor fields supplier screens
// display alongside it.
type orderRow struct {
	models.Order `gorm:"embedded"`

	VendorName  *string `gorm:"column:vendor_name"`
	VendorPhone *string `gorm:"column:vendor_phone"`
	StallName   *string `gorm:"column:stall_name"`
	VendorCity  *string `gorm:"column:vendor_city"`
}

const vendorJoinSelect = "orders.*, v.full_name AS vendor_name, v.mobile_number AS vendor_phone, " +
	"v.stall_name AS stall_name, v.city AS vendor_city"

// Repository handles order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new order row.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	if order == nil {
		return gorm.ErrInvalidData
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select(vendorJoinSelect).
		Joins("LEFT JOIN vendors v ON orders.vendor_id = v.id").
		Order("orders.created_at DESC")
}

// ListAll returns every order joined with vendor display fields.
func (r *Repository) ListAll(ctx context.Context) ([]orderRow, error) {
	var rows []orderRow
	if err := r.joined(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByVendor returns the vendor's own orders, newest first.
func (r *Repository) ListByVendor(ctx context.Context, vendorID int64) ([]models.Order, error) {
	var rows []models.Order
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySupplier returns orders assigned to the supplier, with vendor
// display fields.
func (r *Repository) ListBySupplier(ctx context.Context, supplierID int64) ([]orderRow, error) {
	var rows []orderRow
	if err := r.joined(ctx).
		Where("orders.supplier_id = ?", supplierID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPending returns the supplier inbox: unassigned orders still pending.
func (r *Repository) ListPending(ctx context.Context) ([]orderRow, error) {
	var rows []orderRow
	if err := r.joined(ctx).
		Where("orders.supplier_id IS NULL AND orders.status = ?", enums.OrderStatusPending).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads an order by its uuid.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Accept claims the order for the supplier with a single conditional
// update. The WHERE clause is the whole race policy: only an unassigned,
// still-pending order can be claimed, and concurrent claimers lose on
// rows-affected.
func (r *Repository) Accept(ctx context.Context, id string, supplierID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND supplier_id IS NULL AND status = ?", id, enums.OrderStatusPending).
		Updates(map[string]any{
			"supplier_id": supplierID,
			"status":      enums.OrderStatusAccepted,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateStatuses persists the given lifecycle fields, provided the order is
// still in the statuses the caller validated against. Zero rows affected
// means a concurrent writer moved the order first.
func (r *Repository) UpdateStatuses(ctx context.Context, id string, fromStatus enums.OrderStatus, fromPayment enums.PaymentStatus, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ? AND payment_status = ?", id, fromStatus, fromPayment).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the order row and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
