package models

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// Order is a committed purchase. Its fulfillment status and payment status
// are independent axes; supplier_id stays NULL until a supplier accepts an
// unassigned order or the order targets one at creation.
type Order struct {
	ID              string                 `gorm:"column:id;primaryKey"`
	VendorID        int64                  `gorm:"column:vendor_id;not null"`
	SupplierID      *int64                 `gorm:"column:supplier_id"`
	OrderType       enums.OrderType        `gorm:"column:order_type;not null;default:'individual'"`
	Items           types.OrderItems       `gorm:"column:items;type:text;not null"`
	Subtotal        float64                `gorm:"column:subtotal;not null;default:0"`
	Tax             float64                `gorm:"column:tax;not null;default:0"`
	DeliveryCharge  float64                `gorm:"column:delivery_charge;not null;default:0"`
	GroupDiscount   float64                `gorm:"column:group_discount;not null;default:0"`
	TotalAmount     float64                `gorm:"column:total_amount;not null"`
	Status          enums.OrderStatus      `gorm:"column:status;not null;default:'pending'"`
	PaymentStatus   enums.PaymentStatus    `gorm:"column:payment_status;not null;default:'pending'"`
	PaymentMethod   enums.PaymentMethod    `gorm:"column:payment_method;not null;default:'online'"`
	PaymentID       *string                `gorm:"column:payment_id"`
	DeliveryAddress *string                `gorm:"column:delivery_address"`
	DeliveryDate    *string                `gorm:"column:delivery_date"`
	Notes           *string                `gorm:"column:notes"`
	CustomerDetails *types.CustomerDetails `gorm:"column:customer_details;type:text"`
	CreatedAt       time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
