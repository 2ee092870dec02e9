package orders

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// OrderDTO is the API shape of an order. The vendor display fields are
// populated only on the joined list reads served to supplier screens.
type OrderDTO struct {
	ID              string                 `json:"id"`
	VendorID        int64                  `json:"vendorId"`
	SupplierID      *int64                 `json:"supplierId,omitempty"`
	OrderType       enums.OrderType        `json:"orderType"`
	Items           types.OrderItems       `json:"items"`
	Subtotal        float64                `json:"subtotal"`
	Tax             float64                `json:"tax"`
	DeliveryCharge  float64                `json:"deliveryCharge"`
	GroupDiscount   float64                `json:"groupDiscount"`
	TotalAmount     float64                `json:"totalAmount"`
	Status          enums.OrderStatus      `json:"status"`
	PaymentStatus   enums.PaymentStatus    `json:"paymentStatus"`
	PaymentMethod   enums.PaymentMethod    `json:"paymentMethod"`
	PaymentID       *string                `json:"paymentId,omitempty"`
	DeliveryAddress *string                `json:"deliveryAddress,omitempty"`
	DeliveryDate    *string                `json:"deliveryDate,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	CustomerDetails *types.CustomerDetails `json:"customerDetails,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`

	VendorName  *string `json:"vendorName,omitempty"`
	VendorPhone *string `json:"vendorPhone,omitempty"`
	StallName   *string `json:"stallName,omitempty"`
	VendorCity  *string `json:"vendorCity,omitempty"`
}

// CreateOrderDTO holds the checkout payload. The order id is never client
// supplied; the server mints it.
type CreateOrderDTO struct {
	VendorID        int64                  `json:"vendorId" validate:"required,gt=0"`
	SupplierID      *int64                 `json:"supplierId" validate:"omitempty,gt=0"`
	OrderType       string                 `json:"orderType"`
	Items           []types.OrderItem      `json:"items" validate:"required,min=1"`
	Subtotal        float64                `json:"subtotal" validate:"gte=0"`
	Tax             float64                `json:"tax" validate:"gte=0"`
	DeliveryCharge  float64                `json:"deliveryCharge" validate:"gte=0"`
	GroupDiscount   float64                `json:"groupDiscount" validate:"gte=0"`
	TotalAmount     float64                `json:"totalAmount" validate:"required,gt=0"`
	PaymentStatus   string                 `json:"paymentStatus"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentID       *string                `json:"paymentId"`
	DeliveryAddress *string                `json:"deliveryAddress"`
	DeliveryDate    *string                `json:"deliveryDate"`
	Notes           *string                `json:"notes"`
	CustomerDetails *types.CustomerDetails `json:"customerDetails"`
}

// AcceptOrderDTO carries the supplier claiming an unassigned order.
type AcceptOrderDTO struct {
	SupplierID int64 `json:"supplierId" validate:"required,gt=0"`
}

// UpdateOrderStatusDTO updates either lifecycle axis. At least one field
// must be present.
type UpdateOrderStatusDTO struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// FromModel maps the persisted order into its API shape.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	items := m.Items
	if items == nil {
		items = types.OrderItems{}
	}
	return &OrderDTO{
		ID:              m.ID,
		VendorID:        m.VendorID,
		SupplierID:      m.SupplierID,
		OrderType:       m.OrderType,
		Items:           items,
		Subtotal:        m.Subtotal,
		Tax:             m.Tax,
		DeliveryCharge:  m.DeliveryCharge,
		GroupDiscount:   m.GroupDiscount,
		TotalAmount:     m.TotalAmount,
		Status:          m.Status,
		PaymentStatus:   m.PaymentStatus,
		PaymentMethod:   m.PaymentMethod,
		PaymentID:       m.PaymentID,
		DeliveryAddress: m.DeliveryAddress,
		DeliveryDate:    m.DeliveryDate,
		Notes:           m.Notes,
		CustomerDetails: m.CustomerDetails,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromRow(row *orderRow) *OrderDTO {
	dto := FromModel(&row.Order)
	dto.VendorName = row.VendorName
	dto.VendorPhone = row.VendorPhone
	dto.StallName = row.StallName
	dto.VendorCity = row.VendorCity
	return dto
}

func fromRows(rows []orderRow) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *fromRow(&rows[i]))
	}
	return out
}

func fromModels(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
