package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/routes"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/pkg/auth"
	"github.com/lunarosa/shop/pkg/kvstore"
	"github.com/lunarosa/shop/pkg/router"
	"github.com/lunarosa/shop/pkg/ws"
)

// newTestServer stands up the full route table over an in-memory store.
func newTestServer(t *testing.T, products ...models.Product) *httptest.Server {
	t.Helper()

	store := kvstore.NewMemory()
	catalogRepo := repositories.NewCatalogRepository(store)
	cartRepo := repositories.NewCartRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	settingsRepo := repositories.NewSettingsRepository(store)
	cartService := services.NewCartService(cartRepo, catalogRepo)

	if len(products) > 0 {
		require.NoError(t, catalogRepo.SaveProducts(context.Background(), products))
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New()
	routes.RegisterAPI(r, routes.Deps{
		Catalog:  services.NewCatalogService(catalogRepo, settingsRepo),
		Cart:     cartService,
		Checkout: services.NewCheckoutService(cartService, cartRepo, catalogRepo, orderRepo, settingsRepo),
		Orders:   orderRepo,
		Settings: settingsRepo,
		OrderHub: hub,
	})

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv
}

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) apiEnvelope {
	t.Helper()
	defer resp.Body.Close()

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestProductsEndpointHidesOutOfStock(t *testing.T) {
	soldOut := models.Product{ID: 2, Name: "Agotado", Price: 10000, Stock: 0, Category: "Rostro"}
	srv := newTestServer(t,
		models.Product{ID: 1, Name: "Labial", Price: 25000, Stock: 5, Category: "Labios"},
		soldOut,
	)

	resp, err := http.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)
	require.Equal(t, http.StatusOK, env.Status)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	require.Equal(t, int64(1), products[0].ID)
}

func TestCartAndCheckoutOverHTTP(t *testing.T) {
	srv := newTestServer(t,
		models.Product{ID: 1, Name: "Labial", Price: 10.00, Stock: 5, Category: "Labios", Discount: 20},
	)

	// Two adds.
	for i := 0; i < 2; i++ {
		resp := postJSON(t, srv.URL+"/api/cart", map[string]int64{"productId": 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// Cart shows the discounted receipt.
	resp, err := http.Get(srv.URL + "/api/cart")
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)

	var receipt services.Receipt
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	require.Equal(t, "16.00", receipt.Total)

	// Checkout.
	resp = postJSON(t, srv.URL+"/api/checkout", models.OrderDraft{
		Name:          "Ana María Pérez",
		Phone:         "3001234567",
		Address:       "Calle 45 #12-34, Medellín",
		PaymentMethod: models.PaymentCashOnDelivery,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env = decodeEnvelope(t, resp)

	var conf services.Confirmation
	require.NoError(t, json.Unmarshal(env.Data, &conf))
	require.Equal(t, "16.00", conf.Total)

	// Cart is empty afterwards.
	resp, err = http.Get(srv.URL + "/api/cart")
	require.NoError(t, err)
	env = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	require.Empty(t, receipt.Lines)
}

func TestCheckoutValidationOverHTTP(t *testing.T) {
	srv := newTestServer(t,
		models.Product{ID: 1, Name: "Labial", Price: 10.00, Stock: 5, Category: "Labios"},
	)

	resp := postJSON(t, srv.URL+"/api/cart", map[string]int64{"productId": 1})
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/checkout", models.OrderDraft{
		PaymentMethod: models.PaymentCashOnDelivery,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	require.Contains(t, env.Errors, "name")
	require.Contains(t, env.Errors, "phone")
	require.Contains(t, env.Errors, "address")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/admin/orders")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLoginAndProductCreate(t *testing.T) {
	hash, err := auth.HashPassword("rosa-segura")
	require.NoError(t, err)
	config.Set("ADMIN_PASSWORD_HASH", hash)
	defer config.Set("ADMIN_PASSWORD_HASH", "")

	srv := newTestServer(t)

	// Wrong password is rejected.
	resp := postJSON(t, srv.URL+"/api/admin/login", map[string]string{
		"user": "admin", "password": "incorrecta",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Correct credentials yield a token.
	resp = postJSON(t, srv.URL+"/api/admin/login", map[string]string{
		"user": "admin", "password": "rosa-segura",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	token := payload["token"]
	require.NotEmpty(t, token)

	// The token opens the admin panel.
	body, err := json.Marshal(models.Product{
		Name: "Base Líquida", Price: 52000, Stock: 8, Category: "Rostro",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/admin/products", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env = decodeEnvelope(t, resp)

	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)
}
