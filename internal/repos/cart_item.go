package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/types"
)

type CartItemRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.CartItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.CartItem, error)
	GetByProductID(ctx context.Context, tx *gorm.DB, productID uint) (*types.CartItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) error
	Save(ctx context.Context, tx *gorm.DB, item *types.CartItem) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type cartItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartItemRepo(db *gorm.DB, baseLog *logger.Logger) CartItemRepo {
	repoLog := baseLog.With("repo", "CartItemRepo")
	return &cartItemRepo{db: db, log: repoLog}
}

func (cr *cartItemRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []*types.CartItem{}
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.CartItem
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *cartItemRepo) GetByProductID(ctx context.Context, tx *gorm.DB, productID uint) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.CartItem
	if err := transaction.WithContext(ctx).
		First(&result, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *cartItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(item).Error
}

func (cr *cartItemRepo) Save(ctx context.Context, tx *gorm.DB, item *types.CartItem) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(item).Error
}

func (cr *cartItemRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Delete(&types.CartItem{}, "id = ?", id).Error
}
