package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/skinglow/skinglow-backend/internal/db"
	"github.com/skinglow/skinglow-backend/internal/handlers"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/repos"
	"github.com/skinglow/skinglow-backend/internal/server"
	"github.com/skinglow/skinglow-backend/internal/services"
	"github.com/skinglow/skinglow-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	defer dbService.Close()
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Auto migration failed", "error", err)
	}
	if err := dbService.SeedProducts(context.Background()); err != nil {
		log.Fatal("Product seeding failed", "error", err)
	}
	theDB := dbService.DB()

	// Repos
	productRepo := repos.NewProductRepo(theDB, log)
	cartItemRepo := repos.NewCartItemRepo(theDB, log)
	contactRepo := repos.NewContactRepo(theDB, log)

	// Services
	catalogService := services.NewCatalogService(log, productRepo)
	cartService := services.NewCartService(theDB, log, productRepo, cartItemRepo)
	contactService := services.NewContactService(theDB, log, contactRepo)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)
	healthHandler := handlers.NewHealthHandler(dbService, log)

	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		CORSOrigins:    splitCSV(utils.GetEnv("CORS_ORIGINS", "", log)),
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		ContactHandler: contactHandler,
		HealthHandler:  healthHandler,
		StaticDir:      utils.GetEnv("STATIC_DIR", "web", log),
	})

	port := utils.GetEnvAsInt("PORT", 5000, log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("SkinGlow API running", "addr", srv.Addr)
		log.Info("Routes mounted",
			"products", "GET /api/products, GET /api/products/:id",
			"cart", "GET|POST /api/cart, PUT|DELETE /api/cart/:id",
			"contact", "POST|GET /api/contact, GET|PUT|DELETE /api/contact/:id",
			"health", "GET /api/health",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down...")
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("Server exited with error", "error", err)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
