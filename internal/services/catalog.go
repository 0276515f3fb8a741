package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/repos"
	"github.com/skinglow/skinglow-backend/internal/types"
)

// CatalogService exposes the read-only product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*types.Product, error)
	GetProduct(ctx context.Context, id uint) (*types.Product, error)
}

type catalogService struct {
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewCatalogService(log *logger.Logger, productRepo repos.ProductRepo) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{log: serviceLog, productRepo: productRepo}
}

func (cs *catalogService) ListProducts(ctx context.Context) ([]*types.Product, error) {
	products, err := cs.productRepo.List(ctx, nil)
	if err != nil {
		cs.log.Error("Failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (cs *catalogService) GetProduct(ctx context.Context, id uint) (*types.Product, error) {
	product, err := cs.productRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
		}
		cs.log.Error("Failed to fetch product", "product_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}
