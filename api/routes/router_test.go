package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JRGCaponde/peixaria-backend/internal/auth"
	"github.com/JRGCaponde/peixaria-backend/internal/cart"
	"github.com/JRGCaponde/peixaria-backend/internal/catalog"
	checkoutsvc "github.com/JRGCaponde/peixaria-backend/internal/checkout"
	"github.com/JRGCaponde/peixaria-backend/internal/customers"
	"github.com/JRGCaponde/peixaria-backend/internal/employees"
	"github.com/JRGCaponde/peixaria-backend/internal/notifications"
	"github.com/JRGCaponde/peixaria-backend/internal/orders"
	"github.com/JRGCaponde/peixaria-backend/internal/settings"
	"github.com/JRGCaponde/peixaria-backend/internal/store"
	pkgAuth "github.com/JRGCaponde/peixaria-backend/pkg/auth"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
	"github.com/JRGCaponde/peixaria-backend/pkg/metrics"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

var testPasswordConfig = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     8,
	ArgonKeyLen:      16,
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "development", Port: "8080", LogLevel: "error"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "peixaria-test",
			ExpirationMinutes: 60,
		},
		Password: testPasswordConfig,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *store.Store, *config.Config) {
	t.Helper()
	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "api-test", Level: logger.ParseLevel("error")})

	hash, err := security.HashPassword("segredo-admin", testPasswordConfig)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	st, err := store.New(store.Params{
		AdminName:         "Administrador Principal",
		AdminEmail:        "admin@khrismir.ao",
		AdminPasswordHash: hash,
		Settings:          store.DefaultSettings(),
	})
	if err != nil {
		t.Fatalf("building store: %v", err)
	}

	authService, err := auth.NewService(auth.ServiceParams{Store: st, JWTConfig: cfg.JWT, PasswordConfig: testPasswordConfig})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	catalogService, err := catalog.NewService(st)
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}
	cartService, err := cart.NewService(st)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	checkoutService, err := checkoutsvc.NewService(st)
	if err != nil {
		t.Fatalf("checkout service: %v", err)
	}
	ordersService, err := orders.NewService(st)
	if err != nil {
		t.Fatalf("orders service: %v", err)
	}
	customersService, err := customers.NewService(st, testPasswordConfig)
	if err != nil {
		t.Fatalf("customers service: %v", err)
	}
	employeesService, err := employees.NewService(st, testPasswordConfig)
	if err != nil {
		t.Fatalf("employees service: %v", err)
	}
	settingsService, err := settings.NewService(st)
	if err != nil {
		t.Fatalf("settings service: %v", err)
	}
	notificationsService, err := notifications.NewService(st)
	if err != nil {
		t.Fatalf("notifications service: %v", err)
	}

	registry := prometheus.NewRegistry()
	handler := NewRouter(cfg, logg, registry, metrics.NewHTTPMetrics(registry), Services{
		Auth:          authService,
		Catalog:       catalogService,
		Cart:          cartService,
		Checkout:      checkoutService,
		Orders:        ordersService,
		Customers:     customersService,
		Employees:     employeesService,
		Settings:      settingsService,
		Notifications: notificationsService,
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, st, cfg
}

func mintToken(t *testing.T, cfg *config.Config, kind enums.ActorKind, id string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		ActorKind: kind,
		ActorID:   id,
		Name:      "Tester",
		Email:     "tester@example.ao",
	})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestPublicRoutes(t *testing.T) {
	server, _, _ := newTestServer(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics", "/api/v1/products", "/api/v1/settings", "/api/v1/delivery-slots"} {
		resp := doRequest(t, http.MethodGet, server.URL+path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s returned %d", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestBearerRoutesRequireToken(t *testing.T) {
	server, _, cfg := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/v1/cart", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	token := mintToken(t, cfg, enums.ActorKindCustomer, "cliente-1")
	resp = doRequest(t, http.MethodGet, server.URL+"/api/v1/cart", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminRoutesRejectCustomers(t *testing.T) {
	server, _, cfg := newTestServer(t)

	customerToken := mintToken(t, cfg, enums.ActorKindCustomer, "cliente-1")
	resp := doRequest(t, http.MethodGet, server.URL+"/api/v1/admin/customers", customerToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for customer on admin route, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	staffToken := mintToken(t, cfg, enums.ActorKindStaff, "funcionario-1")
	resp = doRequest(t, http.MethodGet, server.URL+"/api/v1/admin/customers", staffToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for staff on admin route, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLoginFlow(t *testing.T) {
	server, _, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"profile":  "admin",
		"email":    "admin@khrismir.ao",
		"password": "segredo-admin",
	})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 login, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
			Session     struct {
				Kind string `json:"kind"`
			} `json:"session"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if envelope.Data.AccessToken == "" || envelope.Data.Session.Kind != "admin" {
		t.Fatalf("unexpected login payload %+v", envelope.Data)
	}

	wrong, _ := json.Marshal(map[string]string{
		"profile":  "admin",
		"email":    "admin@khrismir.ao",
		"password": "errada",
	})
	resp2 := doRequest(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", wrong)
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", resp2.StatusCode)
	}

	var errEnvelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&errEnvelope); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errEnvelope.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED code, got %q", errEnvelope.Error.Code)
	}
}

func TestCheckoutEndToEnd(t *testing.T) {
	server, st, cfg := newTestServer(t)

	// Seed a product through the admin surface, then buy it.
	staffToken := mintToken(t, cfg, enums.ActorKindStaff, "funcionario-1")
	productBody, _ := json.Marshal(map[string]any{
		"name":          "Corvina",
		"category":      "Fresco",
		"price_per_kg":  "3500",
		"price_per_box": "30000",
	})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/v1/admin/products", staffToken, productBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 product create, got %d", resp.StatusCode)
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decoding product: %v", err)
	}
	resp.Body.Close()

	customerToken := mintToken(t, cfg, enums.ActorKindCustomer, "cliente-1")
	cartBody, _ := json.Marshal(map[string]any{
		"product_id": created.Data.ID,
		"unit":       "kg",
		"quantity":   "2",
	})
	resp = doRequest(t, http.MethodPost, server.URL+"/api/v1/cart", customerToken, cartBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 cart add, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	checkoutBody, _ := json.Marshal(map[string]any{
		"payment_method":   "Dinheiro na Entrega",
		"delivery_address": "Bairro Comandante Cowboy, Lubango",
		"delivery_slot":    "08:00 - 10:00",
	})
	resp = doRequest(t, http.MethodPost, server.URL+"/api/v1/checkout", customerToken, checkoutBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 checkout, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	if len(st.Orders()) != 1 {
		t.Fatalf("expected one placed order, got %d", len(st.Orders()))
	}
	if len(st.Cart()) != 0 {
		t.Fatal("checkout must clear the cart")
	}
}
