package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skinglow/skinglow-backend/internal/types"
)

// newTestDB opens a per-test in-memory sqlite store. The shared-cache DSN
// keeps every pooled connection on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&types.Product{}, &types.CartItem{}, &types.Contact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB, id uint, name string, price int, letter string) {
	t.Helper()
	p := &types.Product{ID: id, Name: name, Description: "test product", Price: price, Letter: letter}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}
