package products

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type productRepository interface {
	Create(ctx context.Context, dto CreateProductDTO) (*models.Product, error)
	List(ctx context.Context, supplierID *int64) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service exposes catalog operations.
type Service interface {
	Create(ctx context.Context, dto CreateProductDTO) (*ProductDTO, error)
	List(ctx context.Context, supplierID *int64) ([]ProductDTO, error)
	GetByID(ctx context.Context, id int64) (*ProductDTO, error)
	Update(ctx context.Context, id int64, dto UpdateProductDTO) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo productRepository
}

// NewService builds a product service over the provided repository.
func NewService(repo productRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, dto CreateProductDTO) (*ProductDTO, error) {
	product, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return FromModel(product), nil
}

func (s *service) List(ctx context.Context, supplierID *int64) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return fromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find product")
	}
	return FromModel(product), nil
}

func (s *service) Update(ctx context.Context, id int64, dto UpdateProductDTO) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find product")
	}

	product.Name = dto.Name
	product.Description = dto.Description
	product.Category = dto.Category
	product.Price = dto.Price
	if dto.Unit != "" {
		product.Unit = dto.Unit
	}
	product.StockQuantity = dto.StockQuantity
	product.Image = dto.Image

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return FromModel(product), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}
