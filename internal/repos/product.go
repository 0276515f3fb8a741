package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/types"
)

type ProductRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	results := []*types.Product{}
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Product
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
