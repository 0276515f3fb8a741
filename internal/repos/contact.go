package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	List(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Contact, error)
	Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(contact).Error
}

// List returns submissions newest first.
func (cr *contactRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []*types.Contact{}
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Contact
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *contactRepo) Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(contact).Error
}

func (cr *contactRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Delete(&types.Contact{}, "id = ?", id).Error
}
