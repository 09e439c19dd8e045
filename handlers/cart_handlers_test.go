package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careon/api-gateway/internal/cartstore"
	"careon/api-gateway/models"
)

func newCartTestApp(t *testing.T) *fiber.App {
	t.Helper()
	mr := miniredis.RunT(t)

	h := NewApplicationHandler(quietLogger())
	h.Cart = cartstore.New(mr.Addr(), "")

	app := fiber.New()
	cart := app.Group("/api/cart/:cartId")
	cart.Get("", h.GetCart)
	cart.Post("/items", h.AddCartItem)
	cart.Delete("/items/:productId", h.RemoveCartItem)
	cart.Delete("", h.ClearCart)
	return app
}

func cartItems(t *testing.T, resp *http.Response) []models.CartItem {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Success bool              `json:"success"`
		Data    []models.CartItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode cart envelope: %v", err)
	}
	return envelope.Data
}

func TestCartAddAggregatesAcrossRequests(t *testing.T) {
	app := newCartTestApp(t)
	id := uuid.NewString()

	resp := postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{
		"product_id": "pos-terminal", "quantity": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first add: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{
		"product_id": "pos-terminal", "quantity": 3,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second add: expected 200, got %d", resp.StatusCode)
	}
	items := cartItems(t, resp)
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected one line with quantity 5, got %+v", items)
	}
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	app := newCartTestApp(t)
	id := uuid.NewString()

	resp := postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{
		"product_id": "cctv",
	})
	items := cartItems(t, resp)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 by default, got %+v", items)
	}
}

func TestCartRejectsInvalidRequests(t *testing.T) {
	app := newCartTestApp(t)
	id := uuid.NewString()

	// Cart IDs must be UUIDs.
	resp := postJSON(t, app, "/api/cart/not-a-uuid/items", map[string]interface{}{
		"product_id": "cctv",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed cart id, got %d", resp.StatusCode)
	}

	// product_id is required.
	resp = postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{"quantity": 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing product_id, got %d", resp.StatusCode)
	}

	// A zero quantity is meaningless.
	resp = postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{
		"product_id": "cctv", "quantity": 0,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", resp.StatusCode)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	app := newCartTestApp(t)
	id := uuid.NewString()

	for _, product := range []string{"a", "b"} {
		resp := postJSON(t, app, "/api/cart/"+id+"/items", map[string]interface{}{"product_id": product})
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+id+"/items/a", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodGet, "/api/cart/"+id, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	items := cartItems(t, resp)
	if len(items) != 1 || items[0].ProductID != "b" {
		t.Fatalf("expected only product b, got %+v", items)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/cart/"+id, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodGet, "/api/cart/"+id, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if items := cartItems(t, resp); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}
