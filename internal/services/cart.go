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

// CartService owns the cart ledger: at most one line item per product.
type CartService interface {
	// AddToCart merges the quantity into an existing line item for the
	// product, or creates one with a snapshot of the product's name,
	// price and letter. The bool reports whether a new item was created.
	AddToCart(ctx context.Context, productID uint, quantity int) (*types.CartItem, bool, error)
	ListCart(ctx context.Context) ([]*types.CartItem, error)
	// UpdateQuantity overwrites the quantity as given. Range checking is
	// deliberately left to the caller; negative values are persisted.
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*types.CartItem, error)
	RemoveLineItem(ctx context.Context, id uint) error
}

type cartService struct {
	db           *gorm.DB
	log          *logger.Logger
	productRepo  repos.ProductRepo
	cartItemRepo repos.CartItemRepo
}

func NewCartService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo, cartItemRepo repos.CartItemRepo) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{
		db:           db,
		log:          serviceLog,
		productRepo:  productRepo,
		cartItemRepo: cartItemRepo,
	}
}

// The find-then-write merge runs inside a single transaction so two
// concurrent adds for the same product cannot lose an increment; the
// unique index on product_id backstops the one-item-per-product rule.
func (cs *cartService) AddToCart(ctx context.Context, productID uint, quantity int) (*types.CartItem, bool, error) {
	if productID == 0 || quantity == 0 {
		return nil, false, fmt.Errorf("product id and quantity are required: %w", apperrors.ErrInvalidArgument)
	}

	var item *types.CartItem
	var created bool

	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := cs.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", productID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch product: %w", err)
		}

		existing, err := cs.cartItemRepo.GetByProductID(ctx, tx, productID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to fetch cart item: %w", err)
			}
			newItem := &types.CartItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Letter:      product.Letter,
				Quantity:    quantity,
			}
			if err := cs.cartItemRepo.Create(ctx, tx, newItem); err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
			item = newItem
			created = true
			return nil
		}

		existing.Quantity += quantity
		if err := cs.cartItemRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	cs.log.Debug("Added to cart", "product_id", productID, "quantity", quantity, "created", created)
	return item, created, nil
}

func (cs *cartService) ListCart(ctx context.Context) ([]*types.CartItem, error) {
	items, err := cs.cartItemRepo.List(ctx, nil)
	if err != nil {
		cs.log.Error("Failed to list cart", "error", err)
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return items, nil
}

func (cs *cartService) UpdateQuantity(ctx context.Context, id uint, quantity int) (*types.CartItem, error) {
	var item *types.CartItem

	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.cartItemRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart item %d: %w", id, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch cart item: %w", err)
		}
		existing.Quantity = quantity
		if err := cs.cartItemRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (cs *cartService) RemoveLineItem(ctx context.Context, id uint) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.cartItemRepo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart item %d: %w", id, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch cart item: %w", err)
		}
		if err := cs.cartItemRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}
		return nil
	})
}
