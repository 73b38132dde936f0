package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Meenakshi-Adapa/CraftHub/models"
)

func TestAddToCartCreatesCartAndDefaultsQuantity(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	recorder := performRequest(router, http.MethodPost, "/api/cart", token, map[string]interface{}{
		"productId": product.ID,
	})
	expectStatus(t, recorder, http.StatusOK)

	response := decodeResponse(t, recorder)
	if got := response["quantity"].(float64); got != 1 {
		t.Errorf("quantity = %v, want 1", got)
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", buyer.ID).First(&cart).Error; err != nil {
		t.Fatalf("cart was not created: %v", err)
	}
}

func TestAddToCartMergesExistingItem(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	for _, quantity := range []int{2, 3} {
		recorder := performRequest(router, http.MethodPost, "/api/cart", token, map[string]interface{}{
			"productId": product.ID,
			"quantity":  quantity,
		})
		expectStatus(t, recorder, http.StatusOK)
	}

	var items []models.CartItem
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("load cart items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart rows = %d, want 1 merged row", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", items[0].Quantity)
	}
}

func TestAddToCartRejectsUnknownProduct(t *testing.T) {
	router, db := setupTestRouter(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)

	recorder := performRequest(router, http.MethodPost, "/api/cart", token, map[string]interface{}{
		"productId": 999,
	})
	expectStatus(t, recorder, http.StatusNotFound)

	response := decodeResponse(t, recorder)
	if response["message"] != "Product not found" {
		t.Errorf("message = %v", response["message"])
	}
}

func TestGetCartEmptyWithoutCart(t *testing.T) {
	router, db := setupTestRouter(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)

	recorder := performRequest(router, http.MethodGet, "/api/cart", token, nil)
	expectStatus(t, recorder, http.StatusOK)

	response := decodeResponse(t, recorder)
	products := response["products"].([]interface{})
	if len(products) != 0 {
		t.Errorf("products = %v, want empty list", products)
	}
}

func TestUpdateCartItemQuantity(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	cart := models.Cart{UserID: buyer.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item: %v", err)
	}

	path := fmt.Sprintf("/api/cart/%d", product.ID)
	recorder := performRequest(router, http.MethodPut, path, token, map[string]interface{}{"quantity": 4})
	expectStatus(t, recorder, http.StatusOK)

	var reloaded models.CartItem
	db.First(&reloaded, item.ID)
	if reloaded.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", reloaded.Quantity)
	}

	// Below one is rejected; removal has its own route.
	recorder = performRequest(router, http.MethodPut, path, token, map[string]interface{}{"quantity": 0})
	expectStatus(t, recorder, http.StatusBadRequest)
	response := decodeResponse(t, recorder)
	if response["message"] != "Valid quantity is required" {
		t.Errorf("message = %v", response["message"])
	}

	// A product that is not in the cart is a 404.
	recorder = performRequest(router, http.MethodPut, "/api/cart/999", token, map[string]interface{}{"quantity": 2})
	expectStatus(t, recorder, http.StatusNotFound)
}

func TestDeleteCartItemIdempotent(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	cart := models.Cart{UserID: buyer.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item: %v", err)
	}

	path := fmt.Sprintf("/api/cart/%d", product.ID)
	for i := 0; i < 2; i++ {
		recorder := performRequest(router, http.MethodDelete, path, token, nil)
		expectStatus(t, recorder, http.StatusOK)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	if count != 0 {
		t.Errorf("cart items remaining = %d, want 0", count)
	}
}

func TestClearCart(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)
	first := createTestProduct(t, db, artist.ID, "clay vase", 500)
	second := createTestProduct(t, db, artist.ID, "woven basket", 120)

	cart := models.Cart{UserID: buyer.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}
	items := []models.CartItem{
		{CartID: cart.ID, ProductID: first.ID, Quantity: 1},
		{CartID: cart.ID, ProductID: second.ID, Quantity: 2},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create cart items: %v", err)
	}

	recorder := performRequest(router, http.MethodDelete, "/api/cart", token, nil)
	expectStatus(t, recorder, http.StatusOK)

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	if count != 0 {
		t.Errorf("cart items remaining = %d, want 0", count)
	}
}
