package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db"
	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type supplierRepository interface {
	Create(ctx context.Context, dto CreateSupplierDTO) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
	FindByExternalAuthID(ctx context.Context, externalAuthID string) (*models.Supplier, error)
	SearchByLocation(ctx context.Context, q LocationQuery) ([]models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service exposes supplier profile operations.
type Service interface {
	Create(ctx context.Context, dto CreateSupplierDTO) (*SupplierDTO, error)
	List(ctx context.Context) ([]SupplierDTO, error)
	GetByID(ctx context.Context, id int64) (*SupplierDTO, error)
	GetByExternalAuthID(ctx context.Context, externalAuthID string) (*SupplierDTO, error)
	SearchByCapabilities(ctx context.Context, capabilities []string) ([]SupplierDTO, error)
	SearchByLocation(ctx context.Context, q LocationQuery) ([]SupplierDTO, error)
	Update(ctx context.Context, id int64, dto UpdateSupplierDTO) (*SupplierDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo supplierRepository
}

// NewService builds a supplier service over the provided repository.
func NewService(repo supplierRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo}, nil
}

// Create inserts the profile, deferring duplicate detection to the unique
// index on external_auth_id.
func (s *service) Create(ctx context.Context, dto CreateSupplierDTO) (*SupplierDTO, error) {
	supplier, err := s.repo.Create(ctx, dto)
	if err != nil {
		if db.IsUniqueViolation(err, "external_auth_id") && dto.ExternalAuthID != nil {
			details := map[string]any{}
			if existing, lookupErr := s.repo.FindByExternalAuthID(ctx, *dto.ExternalAuthID); lookupErr == nil {
				details["supplierId"] = existing.ID
			}
			return nil, pkgerrors.New(pkgerrors.CodeConflict,
				"supplier profile already exists for this account").WithDetails(details)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) List(ctx context.Context) ([]SupplierDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}
	return fromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByExternalAuthID(ctx, externalAuthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find supplier by auth id")
	}
	return FromModel(supplier), nil
}

// SearchByCapabilities returns suppliers whose capability list shares at
// least one entry with the requested one, compared case-insensitively as
// whole values. Capabilities live in a serialized column, so the overlap
// check happens after loading; the catalog stays small enough for that.
func (s *service) SearchByCapabilities(ctx context.Context, capabilities []string) ([]SupplierDTO, error) {
	wanted := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			wanted = append(wanted, strings.ToLower(trimmed))
		}
	}
	if len(wanted) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "capabilities parameter is required")
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}

	matched := make([]models.Supplier, 0, len(rows))
	for _, row := range rows {
		if capabilityOverlap(row.SupplyCapabilities, wanted) {
			matched = append(matched, row)
		}
	}
	return fromModels(matched), nil
}

func capabilityOverlap(have types.StringList, wanted []string) bool {
	lowered := make(types.StringList, 0, len(have))
	for _, h := range have {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(h)))
	}
	return lowered.ContainsAny(wanted)
}

// SearchByLocation matches on city, state, or pincode. At least one filter
// is required.
func (s *service) SearchByLocation(ctx context.Context, q LocationQuery) ([]SupplierDTO, error) {
	if q.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one of city, state, pincode is required")
	}
	rows, err := s.repo.SearchByLocation(ctx, q)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search suppliers by location")
	}
	return fromModels(rows), nil
}

// Update replaces the mutable profile fields wholesale.
func (s *service) Update(ctx context.Context, id int64, dto UpdateSupplierDTO) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find supplier")
	}

	supplier.FullName = dto.FullName
	supplier.MobileNumber = dto.MobileNumber
	supplier.LanguagePreference = dto.LanguagePreference
	supplier.BusinessName = dto.BusinessName
	supplier.BusinessAddress = dto.BusinessAddress
	supplier.City = dto.City
	supplier.Pincode = dto.Pincode
	supplier.State = dto.State
	supplier.BusinessType = dto.BusinessType
	supplier.SupplyCapabilities = types.StringList(dto.SupplyCapabilities)
	supplier.PreferredDeliveryTime = dto.PreferredDeliveryTime
	supplier.Latitude = dto.Latitude
	supplier.Longitude = dto.Longitude
	supplier.GSTNumber = dto.GSTNumber
	supplier.LicenseNumber = dto.LicenseNumber
	supplier.YearsInBusiness = dto.YearsInBusiness
	supplier.EmployeeCount = dto.EmployeeCount
	supplier.PrimaryEmail = dto.PrimaryEmail
	supplier.WhatsappBusiness = dto.WhatsappBusiness
	supplier.FoodSafetyLicense = dto.FoodSafetyLicense
	supplier.OrganicCertification = dto.OrganicCertification
	supplier.ISOCertification = dto.ISOCertification
	supplier.ExportLicense = dto.ExportLicense

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete supplier")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}
	return nil
}
