package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Meenakshi-Adapa/CraftHub/models"
)

func TestCreateProductRequiresArtist(t *testing.T) {
	router, db := setupTestRouter(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)

	recorder := performRequest(router, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name":        "clay vase",
		"description": "hand thrown",
		"price":       500,
		"category":    "pottery",
	})
	expectStatus(t, recorder, http.StatusForbidden)
}

func TestCreateProduct(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	recorder := performRequest(router, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name":        "clay vase",
		"description": "hand thrown",
		"price":       500,
		"category":    "pottery",
	})
	expectStatus(t, recorder, http.StatusCreated)

	var product models.Product
	if err := db.First(&product).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if product.ArtistID != artist.ID {
		t.Errorf("artistId = %d, want %d", product.ArtistID, artist.ID)
	}

	// Non-positive prices never pass validation.
	recorder = performRequest(router, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name":        "free vase",
		"description": "hand thrown",
		"price":       0,
		"category":    "pottery",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestUpdateProductScopedToOwner(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleArtist)
	other := createTestUser(t, db, "other@example.com", models.RoleArtist)
	otherToken := loginTestUser(t, db, other)
	product := createTestProduct(t, db, owner.ID, "clay vase", 500)

	path := fmt.Sprintf("/api/products/%d", product.ID)
	recorder := performRequest(router, http.MethodPut, path, otherToken, map[string]interface{}{
		"price": 1,
	})
	expectStatus(t, recorder, http.StatusNotFound)

	var reloaded models.Product
	db.First(&reloaded, product.ID)
	if reloaded.Price != 500 {
		t.Errorf("price = %v, want unchanged 500", reloaded.Price)
	}
}

func TestUpdateProductPartialFields(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	path := fmt.Sprintf("/api/products/%d", product.ID)
	recorder := performRequest(router, http.MethodPut, path, token, map[string]interface{}{
		"price": 650,
	})
	expectStatus(t, recorder, http.StatusOK)

	var reloaded models.Product
	db.First(&reloaded, product.ID)
	if reloaded.Price != 650 {
		t.Errorf("price = %v, want 650", reloaded.Price)
	}
	if reloaded.Name != "clay vase" {
		t.Errorf("name = %q, want untouched", reloaded.Name)
	}

	recorder = performRequest(router, http.MethodPut, path, token, map[string]interface{}{
		"price": -1,
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestDeleteProduct(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	path := fmt.Sprintf("/api/products/%d", product.ID)
	recorder := performRequest(router, http.MethodDelete, path, token, nil)
	expectStatus(t, recorder, http.StatusOK)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("products remaining = %d, want 0", count)
	}
}

func TestGetProductListPublic(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	createTestProduct(t, db, artist.ID, "clay vase", 500)
	createTestProduct(t, db, artist.ID, "woven basket", 120)

	recorder := performRequest(router, http.MethodGet, "/api/products?limit=1", "", nil)
	expectStatus(t, recorder, http.StatusOK)
	response := decodeResponse(t, recorder)
	products := response["products"].([]interface{})
	if len(products) != 1 {
		t.Errorf("products = %d, want 1 with limit=1", len(products))
	}

	recorder = performRequest(router, http.MethodGet, "/api/products?limit=0", "", nil)
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestGetCategoryProducts(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	createTestProduct(t, db, artist.ID, "clay vase", 500)
	other := models.Product{
		Name: "silver ring", Description: "handmade", Price: 900,
		Category: "jewellery", ArtistID: artist.ID,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	recorder := performRequest(router, http.MethodGet, "/api/category/jewellery", "", nil)
	expectStatus(t, recorder, http.StatusOK)
	response := decodeResponse(t, recorder)
	products := response["products"].([]interface{})
	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
	entry := products[0].(map[string]interface{})
	if entry["name"] != "silver ring" {
		t.Errorf("name = %v", entry["name"])
	}
}

func TestAddCommentRecomputesAverageRating(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	reviewer := createTestUser(t, db, "reviewer@example.com", models.RoleUser)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	path := fmt.Sprintf("/api/products/%d/comments", product.ID)

	buyerToken := loginTestUser(t, db, buyer)
	recorder := performRequest(router, http.MethodPost, path, buyerToken, map[string]interface{}{
		"rating": 5,
		"text":   "beautiful glaze",
	})
	expectStatus(t, recorder, http.StatusOK)

	reviewerToken := loginTestUser(t, db, reviewer)
	recorder = performRequest(router, http.MethodPost, path, reviewerToken, map[string]interface{}{
		"rating": 2,
		"text":   "arrived chipped",
	})
	expectStatus(t, recorder, http.StatusOK)

	var reloaded models.Product
	db.First(&reloaded, product.ID)
	if reloaded.AverageRating != 3.5 {
		t.Errorf("averageRating = %v, want 3.5", reloaded.AverageRating)
	}

	// Ratings outside 1..5 are rejected.
	recorder = performRequest(router, http.MethodPost, path, buyerToken, map[string]interface{}{
		"rating": 6,
		"text":   "off the scale",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}
