// Package dashboard composes the per-role home screens out of the other
// services. It stores nothing itself.
package dashboard

import (
	"context"
	"fmt"

	"github.com/marketconnect/marketconnect-backend/internal/groups"
	"github.com/marketconnect/marketconnect-backend/internal/orders"
	"github.com/marketconnect/marketconnect-backend/internal/suppliers"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

type groupsService interface {
	List(ctx context.Context, createdBy *int64) ([]groups.ProductGroupDTO, error)
	ListOpen(ctx context.Context) ([]groups.ProductGroupDTO, error)
}

type ordersService interface {
	ListByVendor(ctx context.Context, vendorID int64) ([]orders.OrderDTO, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]orders.OrderDTO, error)
}

type suppliersService interface {
	GetByID(ctx context.Context, id int64) (*suppliers.SupplierDTO, error)
}

// SupplierDashboardDTO is everything the supplier home screen shows.
type SupplierDashboardDTO struct {
	ProductGroups []groups.ProductGroupDTO `json:"productGroups"`
	PaidOrders    []orders.OrderDTO        `json:"paidOrders"`
	OrderHistory  []orders.OrderDTO        `json:"orderHistory"`
	Counts        SupplierCounts           `json:"counts"`
}

// SupplierCounts summarizes the supplier's activity.
type SupplierCounts struct {
	ProductGroups int `json:"productGroups"`
	PaidOrders    int `json:"paidOrders"`
	TotalOrders   int `json:"totalOrders"`
}

// VendorDashboardDTO is everything the vendor home screen shows. Suppliers
// are synthesized from the creators of open product groups; there is no
// stored vendor-supplier relation.
type VendorDashboardDTO struct {
	OpenGroups []groups.ProductGroupDTO `json:"openGroups"`
	Orders     []orders.OrderDTO        `json:"orders"`
	Suppliers  []suppliers.SupplierDTO  `json:"suppliers"`
}

// Service assembles the dashboards.
type Service interface {
	SupplierDashboard(ctx context.Context, supplierID int64) (*SupplierDashboardDTO, error)
	VendorDashboard(ctx context.Context, vendorID int64) (*VendorDashboardDTO, error)
}

type service struct {
	groups    groupsService
	orders    ordersService
	suppliers suppliersService
}

// NewService builds a dashboard service over the domain services.
func NewService(groupsSvc groupsService, ordersSvc ordersService, suppliersSvc suppliersService) (Service, error) {
	if groupsSvc == nil {
		return nil, fmt.Errorf("groups service required")
	}
	if ordersSvc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if suppliersSvc == nil {
		return nil, fmt.Errorf("suppliers service required")
	}
	return &service{groups: groupsSvc, orders: ordersSvc, suppliers: suppliersSvc}, nil
}

// SupplierDashboard returns the supplier's own offers and assigned orders,
// with the paid subset split out for the earnings view.
func (s *service) SupplierDashboard(ctx context.Context, supplierID int64) (*SupplierDashboardDTO, error) {
	ownGroups, err := s.groups.List(ctx, &supplierID)
	if err != nil {
		return nil, err
	}
	history, err := s.orders.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	paid := make([]orders.OrderDTO, 0, len(history))
	for _, o := range history {
		if o.PaymentStatus == enums.PaymentStatusCompleted {
			paid = append(paid, o)
		}
	}

	return &SupplierDashboardDTO{
		ProductGroups: ownGroups,
		PaidOrders:    paid,
		OrderHistory:  history,
		Counts: SupplierCounts{
			ProductGroups: len(ownGroups),
			PaidOrders:    len(paid),
			TotalOrders:   len(history),
		},
	}, nil
}

// VendorDashboard returns open offers, the vendor's orders, and the
// distinct suppliers behind those offers. Creators without a resolvable
// profile are skipped rather than failing the whole screen.
func (s *service) VendorDashboard(ctx context.Context, vendorID int64) (*VendorDashboardDTO, error) {
	open, err := s.groups.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	own, err := s.orders.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	seen := map[int64]bool{}
	supplierList := make([]suppliers.SupplierDTO, 0, len(open))
	for _, g := range open {
		if seen[g.CreatedBy] {
			continue
		}
		seen[g.CreatedBy] = true
		profile, lookupErr := s.suppliers.GetByID(ctx, g.CreatedBy)
		if lookupErr != nil {
			continue
		}
		supplierList = append(supplierList, *profile)
	}

	return &VendorDashboardDTO{
		OpenGroups: open,
		Orders:     own,
		Suppliers:  supplierList,
	}, nil
}
