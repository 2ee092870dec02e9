package vendors

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db"
	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type vendorRepository interface {
	Create(ctx context.Context, dto CreateVendorDTO) (*models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
	FindByID(ctx context.Context, id int64) (*models.Vendor, error)
	FindByExternalAuthID(ctx context.Context, externalAuthID string) (*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service exposes vendor profile operations.
type Service interface {
	Create(ctx context.Context, dto CreateVendorDTO) (*VendorDTO, error)
	List(ctx context.Context) ([]VendorDTO, error)
	GetByID(ctx context.Context, id int64) (*VendorDTO, error)
	GetByExternalAuthID(ctx context.Context, externalAuthID string) (*VendorDTO, error)
	Update(ctx context.Context, id int64, dto UpdateVendorDTO) (*VendorDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo vendorRepository
}

// NewService builds a vendor service over the provided repository.
func NewService(repo vendorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository required")
	}
	return &service{repo: repo}, nil
}

// Create inserts the profile. The unique index on external_auth_id is the
// only dedup authority; a violation is reported as a conflict carrying the
// already-registered vendor's id.
func (s *service) Create(ctx context.Context, dto CreateVendorDTO) (*VendorDTO, error) {
	vendor, err := s.repo.Create(ctx, dto)
	if err != nil {
		if db.IsUniqueViolation(err, "external_auth_id") && dto.ExternalAuthID != nil {
			details := map[string]any{}
			if existing, lookupErr := s.repo.FindByExternalAuthID(ctx, *dto.ExternalAuthID); lookupErr == nil {
				details["vendorId"] = existing.ID
			}
			return nil, pkgerrors.New(pkgerrors.CodeConflict,
				"vendor profile already exists for this account").WithDetails(details)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vendor")
	}
	return FromModel(vendor), nil
}

func (s *service) List(ctx context.Context) ([]VendorDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendors")
	}
	return fromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*VendorDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find vendor")
	}
	return FromModel(vendor), nil
}

func (s *service) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*VendorDTO, error) {
	vendor, err := s.repo.FindByExternalAuthID(ctx, externalAuthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find vendor by auth id")
	}
	return FromModel(vendor), nil
}

// Update replaces the mutable profile fields wholesale.
func (s *service) Update(ctx context.Context, id int64, dto UpdateVendorDTO) (*VendorDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find vendor")
	}

	vendor.FullName = dto.FullName
	vendor.MobileNumber = dto.MobileNumber
	vendor.LanguagePreference = dto.LanguagePreference
	vendor.StallName = dto.StallName
	vendor.StallAddress = dto.StallAddress
	vendor.City = dto.City
	vendor.Pincode = dto.Pincode
	vendor.State = dto.State
	vendor.StallType = dto.StallType
	vendor.RawMaterialNeeds = types.StringList(dto.RawMaterialNeeds)
	vendor.PreferredDeliveryTime = dto.PreferredDeliveryTime
	vendor.Latitude = dto.Latitude
	vendor.Longitude = dto.Longitude

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update vendor")
	}
	return FromModel(vendor), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete vendor")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}
	return nil
}
