package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/types"
	"github.com/skinglow/skinglow-backend/internal/utils"
)

// DatabaseService owns the gorm handle for the process. It is constructed
// once at startup and injected into repos and handlers; nothing reaches
// for a package-level connection.
type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	driver := utils.GetEnv("DB_DRIVER", "sqlite", log)

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "skinglow", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "skinglow.db", log)
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	serviceLog.Info("Connecting to database...", "driver", driver)
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DatabaseService{db: gormDB, log: serviceLog}, nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(
		&types.Product{},
		&types.CartItem{},
		&types.Contact{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

// SeedProducts inserts the fixed catalog only when the product table is
// empty, so restarts never duplicate or overwrite rows.
func (s *DatabaseService) SeedProducts(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&types.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		s.log.Debug("Product table already seeded", "count", count)
		return nil
	}
	products := []*types.Product{
		{ID: 1, Name: "Hydrating Face Cream", Description: "Rich moisturizer for all skin types", Price: 2499, Letter: "H"},
		{ID: 2, Name: "Vitamin C Serum", Description: "Brightening serum with vitamin C", Price: 3319, Letter: "V"},
		{ID: 3, Name: "Exfoliating Scrub", Description: "Gentle exfoliant for smooth skin", Price: 2075, Letter: "E"},
		{ID: 4, Name: "Night Recovery Mask", Description: "Deep nourishing treatment mask", Price: 2905, Letter: "N"},
		{ID: 5, Name: "Sunscreen SPF 50", Description: "UV protection for daily use", Price: 2739, Letter: "S"},
		{ID: 6, Name: "Eye Contour Gel", Description: "Anti-aging for delicate eye area", Price: 3735, Letter: "E"},
	}
	if err := s.db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	s.log.Info("Seeded product catalog", "count", len(products))
	return nil
}

// Ping reports whether the underlying store is reachable.
func (s *DatabaseService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *DatabaseService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
