package groups

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type groupRepository interface {
	Create(ctx context.Context, dto CreateProductGroupDTO) (*models.ProductGroup, error)
	List(ctx context.Context, createdBy *int64) ([]models.ProductGroup, error)
	ListByStatus(ctx context.Context, status enums.GroupStatus) ([]models.ProductGroup, error)
	FindByID(ctx context.Context, id int64) (*models.ProductGroup, error)
	UpdateStatus(ctx context.Context, id int64, from, to enums.GroupStatus) (bool, error)
}

// Service exposes product group operations.
type Service interface {
	Create(ctx context.Context, dto CreateProductGroupDTO) (*ProductGroupDTO, error)
	List(ctx context.Context, createdBy *int64) ([]ProductGroupDTO, error)
	ListOpen(ctx context.Context) ([]ProductGroupDTO, error)
	GetByID(ctx context.Context, id int64) (*ProductGroupDTO, error)
	UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*ProductGroupDTO, error)
}

type service struct {
	repo groupRepository
}

// NewService builds a product group service over the provided repository.
func NewService(repo groupRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product group repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, dto CreateProductGroupDTO) (*ProductGroupDTO, error) {
	group, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product group")
	}
	return FromModel(group), nil
}

func (s *service) List(ctx context.Context, createdBy *int64) ([]ProductGroupDTO, error) {
	rows, err := s.repo.List(ctx, createdBy)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product groups")
	}
	return fromModels(rows), nil
}

// ListOpen returns groups still awaiting a vendor decision.
func (s *service) ListOpen(ctx context.Context) ([]ProductGroupDTO, error) {
	rows, err := s.repo.ListByStatus(ctx, enums.GroupStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list open product groups")
	}
	return fromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ProductGroupDTO, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find product group")
	}
	return FromModel(group), nil
}

// UpdateStatus moves the group along its lifecycle. Unknown labels are a
// validation error; known labels outside the transition table are a state
// conflict.
func (s *service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*ProductGroupDTO, error) {
	next, err := enums.ParseGroupStatus(dto.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse product group status")
	}

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find product group")
	}

	if !group.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move product group from %s to %s", group.Status, next))
	}

	moved, err := s.repo.UpdateStatus(ctx, id, group.Status, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product group status")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("product group is no longer %s", group.Status))
	}
	group.Status = next
	return FromModel(group), nil
}
