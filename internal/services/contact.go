package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/repos"
	"github.com/skinglow/skinglow-backend/internal/types"
)

// ContactService owns the contact-form ledger.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*types.Contact, error)
	List(ctx context.Context) ([]*types.Contact, error)
	Get(ctx context.Context, id uint) (*types.Contact, error)
	// UpdateStatus overwrites the status as given. The three conventional
	// values are new/read/replied but no enum check is applied here.
	UpdateStatus(ctx context.Context, id uint, status string) (*types.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{db: db, log: serviceLog, contactRepo: contactRepo}
}

func (cs *contactService) Submit(ctx context.Context, name, email, message string) (*types.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("name, email and message are required: %w", apperrors.ErrInvalidArgument)
	}

	contact := &types.Contact{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  types.ContactStatusNew,
	}
	if err := cs.contactRepo.Create(ctx, nil, contact); err != nil {
		cs.log.Error("Failed to create contact", "error", err)
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	cs.log.Info("Contact form received", "contact_id", contact.ID, "email", email)
	return contact, nil
}

func (cs *contactService) List(ctx context.Context) ([]*types.Contact, error) {
	contacts, err := cs.contactRepo.List(ctx, nil)
	if err != nil {
		cs.log.Error("Failed to list contacts", "error", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (cs *contactService) Get(ctx context.Context, id uint) (*types.Contact, error) {
	contact, err := cs.contactRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact %d: %w", id, apperrors.ErrNotFound)
		}
		cs.log.Error("Failed to fetch contact", "contact_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return contact, nil
}

func (cs *contactService) UpdateStatus(ctx context.Context, id uint, status string) (*types.Contact, error) {
	var contact *types.Contact

	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.contactRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("contact %d: %w", id, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch contact: %w", err)
		}
		existing.Status = status
		if err := cs.contactRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}
		contact = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (cs *contactService) Delete(ctx context.Context, id uint) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.contactRepo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("contact %d: %w", id, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch contact: %w", err)
		}
		if err := cs.contactRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
}
