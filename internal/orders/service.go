package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListAll(ctx context.Context) ([]orderRow, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Order, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]orderRow, error)
	ListPending(ctx context.Context) ([]orderRow, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Accept(ctx context.Context, id string, supplierID int64) (bool, error)
	UpdateStatuses(ctx context.Context, id string, fromStatus enums.OrderStatus, fromPayment enums.PaymentStatus, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service exposes order operations.
type Service interface {
	Create(ctx context.Context, dto CreateOrderDTO) (*OrderDTO, error)
	ListAll(ctx context.Context) ([]OrderDTO, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]OrderDTO, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]OrderDTO, error)
	ListPending(ctx context.Context) ([]OrderDTO, error)
	GetByID(ctx context.Context, id string) (*OrderDTO, error)
	Accept(ctx context.Context, id string, dto AcceptOrderDTO) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, id string, dto UpdateOrderStatusDTO) (*OrderDTO, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo orderRepository
}

// NewService builds an order service over the provided repository.
func NewService(repo orderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo}, nil
}

// Create mints the order id server-side and validates the submitted
// amounts before anything touches storage.
func (s *service) Create(ctx context.Context, dto CreateOrderDTO) (*OrderDTO, error) {
	orderType := enums.OrderTypeIndividual
	if dto.OrderType != "" {
		parsed, err := enums.ParseOrderType(dto.OrderType)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse order type")
		}
		orderType = parsed
	}

	paymentStatus := enums.PaymentStatusCompleted
	if dto.PaymentStatus != "" {
		parsed, err := enums.ParsePaymentStatus(dto.PaymentStatus)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse payment status")
		}
		paymentStatus = parsed
	}

	paymentMethod := enums.PaymentMethodOnline
	if dto.PaymentMethod != "" {
		parsed, err := enums.ParsePaymentMethod(dto.PaymentMethod)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse payment method")
		}
		paymentMethod = parsed
	}

	if err := validateTotals(dto); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		VendorID:        dto.VendorID,
		SupplierID:      dto.SupplierID,
		OrderType:       orderType,
		Items:           types.OrderItems(dto.Items),
		Subtotal:        dto.Subtotal,
		Tax:             dto.Tax,
		DeliveryCharge:  dto.DeliveryCharge,
		GroupDiscount:   dto.GroupDiscount,
		TotalAmount:     dto.TotalAmount,
		Status:          enums.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   paymentMethod,
		PaymentID:       dto.PaymentID,
		DeliveryAddress: dto.DeliveryAddress,
		DeliveryDate:    dto.DeliveryDate,
		Notes:           dto.Notes,
		CustomerDetails: dto.CustomerDetails,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return FromModel(order), nil
}

// validateTotals checks the client's arithmetic with decimal math: the
// item subtotals must sum to the submitted subtotal, and
// subtotal + tax + deliveryCharge - groupDiscount must equal totalAmount.
// Comparison happens at two decimal places, the money precision clients
// submit.
func validateTotals(dto CreateOrderDTO) error {
	money := func(f float64) decimal.Decimal {
		return decimal.NewFromFloat(f).Round(2)
	}

	itemsSum := decimal.Zero
	for _, item := range dto.Items {
		itemsSum = itemsSum.Add(money(item.Subtotal))
	}
	subtotal := money(dto.Subtotal)
	if !itemsSum.Equal(subtotal) {
		return pkgerrors.New(pkgerrors.CodeValidation, "item subtotals do not add up to subtotal").
			WithDetails(map[string]any{
				"subtotal": subtotal.String(),
				"itemsSum": itemsSum.String(),
			})
	}

	expected := subtotal.
		Add(money(dto.Tax)).
		Add(money(dto.DeliveryCharge)).
		Sub(money(dto.GroupDiscount))
	total := money(dto.TotalAmount)
	if !expected.Equal(total) {
		return pkgerrors.New(pkgerrors.CodeValidation, "total amount does not match charges").
			WithDetails(map[string]any{
				"totalAmount": total.String(),
				"expected":    expected.String(),
			})
	}
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]OrderDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return fromRows(rows), nil
}

func (s *service) ListByVendor(ctx context.Context, vendorID int64) ([]OrderDTO, error) {
	rows, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendor orders")
	}
	return fromModels(rows), nil
}

func (s *service) ListBySupplier(ctx context.Context, supplierID int64) ([]OrderDTO, error) {
	rows, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list supplier orders")
	}
	return fromRows(rows), nil
}

func (s *service) ListPending(ctx context.Context) ([]OrderDTO, error) {
	rows, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending orders")
	}
	return fromRows(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find order")
	}
	return FromModel(order), nil
}

// Accept assigns the order to the supplier. The repository's conditional
// update is the only decision point; when it claims no rows the order is
// either gone (404) or already taken (409).
func (s *service) Accept(ctx context.Context, id string, dto AcceptOrderDTO) (*OrderDTO, error) {
	claimed, err := s.repo.Accept(ctx, id, dto.SupplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept order")
	}
	if !claimed {
		if _, findErr := s.repo.FindByID(ctx, id); errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already assigned or no longer pending")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload accepted order")
	}
	return FromModel(order), nil
}

// UpdateStatus advances the fulfillment and payment axes independently,
// both gated by their transition tables. The write is conditional on the
// statuses the check ran against, so interleaved updates cannot combine
// into a transition nobody validated.
func (s *service) UpdateStatus(ctx context.Context, id string, dto UpdateOrderStatusDTO) (*OrderDTO, error) {
	if dto.Status == nil && dto.PaymentStatus == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status or paymentStatus is required")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find order")
	}

	fromStatus := order.Status
	fromPayment := order.PaymentStatus
	fields := map[string]any{}

	if dto.Status != nil {
		next, parseErr := enums.ParseOrderStatus(*dto.Status)
		if parseErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "parse order status")
		}
		if !order.Status.CanTransitionTo(next) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
		}
		order.Status = next
		fields["status"] = next
	}

	if dto.PaymentStatus != nil {
		next, parseErr := enums.ParsePaymentStatus(*dto.PaymentStatus)
		if parseErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "parse payment status")
		}
		if !order.PaymentStatus.CanTransitionTo(next) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot move payment from %s to %s", order.PaymentStatus, next))
		}
		order.PaymentStatus = next
		fields["payment_status"] = next
	}

	moved, err := s.repo.UpdateStatuses(ctx, id, fromStatus, fromPayment, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order moved to another state while updating")
	}
	return FromModel(order), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}
