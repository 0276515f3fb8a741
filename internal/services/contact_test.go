package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/repos"
	"github.com/skinglow/skinglow-backend/internal/types"
)

func newContactService(t *testing.T) (ContactService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	log := logger.NewNop()
	contactRepo := repos.NewContactRepo(gdb, log)
	return NewContactService(gdb, log, contactRepo), gdb
}

func TestSubmit_DefaultsStatusNew(t *testing.T) {
	svc, _ := newContactService(t)

	contact, err := svc.Submit(context.Background(), "A", "a@b.com", "hi")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if contact.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if contact.Status != types.ContactStatusNew {
		t.Fatalf("expected status %q, got %q", types.ContactStatusNew, contact.Status)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	svc, _ := newContactService(t)
	ctx := context.Background()

	cases := []struct {
		label                string
		name, email, message string
	}{
		{"no name", "", "a@b.com", "hi"},
		{"no email", "A", "", "hi"},
		{"no message", "A", "a@b.com", ""},
		{"whitespace only", "  ", "a@b.com", "hi"},
		{"all empty", "", "", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(ctx, tc.name, tc.email, tc.message); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.label, err)
		}
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("expected no records after failed submits, got %d", len(contacts))
	}
}

func TestList_NewestFirst(t *testing.T) {
	svc, gdb := newContactService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		c := &types.Contact{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hello",
			Status:    types.ContactStatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := gdb.Create(c).Error; err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "third" || contacts[1].Name != "second" || contacts[2].Name != "first" {
		t.Fatalf("expected newest first, got %s, %s, %s", contacts[0].Name, contacts[1].Name, contacts[2].Name)
	}
}

func TestUpdateStatus_ArbitraryValuePersisted(t *testing.T) {
	// Status is a free-form column; no enum check at this layer.
	svc, _ := newContactService(t)
	ctx := context.Background()

	contact, err := svc.Submit(ctx, "A", "a@b.com", "hi")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, contact.ID, "escalated")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "escalated" {
		t.Fatalf("expected status escalated, got %q", updated.Status)
	}

	got, err := svc.Get(ctx, contact.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "escalated" {
		t.Fatalf("expected persisted status escalated, got %q", got.Status)
	}
}

func TestUpdateStatus_UnknownContact(t *testing.T) {
	svc, _ := newContactService(t)

	if _, err := svc.UpdateStatus(context.Background(), 77, types.ContactStatusRead); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesContact(t *testing.T) {
	svc, _ := newContactService(t)
	ctx := context.Background()

	contact, err := svc.Submit(ctx, "A", "a@b.com", "hi")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.Delete(ctx, contact.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, contact.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, contact.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
