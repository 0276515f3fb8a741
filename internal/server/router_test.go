package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skinglow/skinglow-backend/internal/db"
	"github.com/skinglow/skinglow-backend/internal/handlers"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/repos"
	"github.com/skinglow/skinglow-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full stack over a throwaway sqlite file, the
// same way cmd/main.go does at startup.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "api.db"))

	log := logger.NewNop()
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		t.Fatalf("new database service: %v", err)
	}
	t.Cleanup(func() { dbService.Close() })
	if err := dbService.AutoMigrateAll(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbService.SeedProducts(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	gdb := dbService.DB()

	productRepo := repos.NewProductRepo(gdb, log)
	cartItemRepo := repos.NewCartItemRepo(gdb, log)
	contactRepo := repos.NewContactRepo(gdb, log)

	return NewRouter(RouterConfig{
		Log:            log,
		ProductHandler: handlers.NewProductHandler(services.NewCatalogService(log, productRepo), log),
		CartHandler:    handlers.NewCartHandler(services.NewCartService(gdb, log, productRepo, cartItemRepo), log),
		ContactHandler: handlers.NewContactHandler(services.NewContactService(gdb, log, contactRepo), log),
		HealthHandler:  handlers.NewHealthHandler(dbService, log),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestCartMergeOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "quantity": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("first add: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "quantity": 3})
	if rec.Code != http.StatusOK {
		t.Fatalf("second add: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list cart: expected 200, got %d", rec.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0]["productId"] != float64(1) || items[0]["quantity"] != float64(5) {
		t.Fatalf("expected productId 1 quantity 5, got %v", items[0])
	}
}

func TestAddToCart_MissingFieldsReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart", map[string]any{"quantity": 2})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Product ID and quantity required" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestAddToCart_UnknownProductReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart", map[string]any{"productId": 999, "quantity": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetUnknownProductReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/products/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Product not found" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestListProductsReturnsSeededCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seeded products, got %d", len(products))
	}
	if products[0]["name"] == "" || products[0]["price"] == nil {
		t.Fatalf("unexpected product shape: %v", products[0])
	}
}

func TestContactRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name": "A", "email": "a@b.com", "message": "hi",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	contactID, ok := body["contactId"].(float64)
	if !ok || contactID <= 0 {
		t.Fatalf("expected numeric contactId, got %v", body["contactId"])
	}

	rec = doJSON(t, router, http.MethodGet, "/api/contact/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get contact: expected 200, got %d", rec.Code)
	}
	if status := decodeBody(t, rec)["status"]; status != "new" {
		t.Fatalf("expected status new, got %v", status)
	}
}

func TestContact_MissingFieldsReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{"name": "A", "email": "a@b.com"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/contact", nil)
	var contacts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &contacts); err != nil {
		t.Fatalf("decode contacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("expected no stored contacts, got %d", len(contacts))
	}
}

func TestDeleteCartItemTwice(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart", map[string]any{"productId": 2, "quantity": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", rec.Code)
	}
	item := decodeBody(t, rec)["item"].(map[string]any)
	id := int(item["id"].(float64))

	path := "/api/cart/" + strconv.Itoa(id)
	rec = doJSON(t, router, http.MethodDelete, path, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, path, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestHealthConnected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if dbState := decodeBody(t, rec)["dbState"]; dbState != "Connected" {
		t.Fatalf("expected dbState Connected, got %v", dbState)
	}
}
