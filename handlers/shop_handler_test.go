package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Meenakshi-Adapa/CraftHub/models"
)

func TestCheckShop(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	recorder := performRequest(router, http.MethodGet, "/api/shop/check", token, nil)
	expectStatus(t, recorder, http.StatusOK)
	response := decodeResponse(t, recorder)
	if response["hasShop"] != false {
		t.Errorf("hasShop = %v, want false", response["hasShop"])
	}

	shop := models.Shop{Name: "Meera Ceramics", OwnerID: artist.ID}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}

	recorder = performRequest(router, http.MethodGet, "/api/shop/check", token, nil)
	expectStatus(t, recorder, http.StatusOK)
	response = decodeResponse(t, recorder)
	if response["hasShop"] != true {
		t.Errorf("hasShop = %v, want true", response["hasShop"])
	}
}

func TestCheckShopNameCaseInsensitive(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	shop := models.Shop{Name: "Meera Ceramics", OwnerID: artist.ID}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}

	recorder := performRequest(router, http.MethodPost, "/api/shop/check-name", token, map[string]string{
		"shopName": "MEERA ceramics",
	})
	expectStatus(t, recorder, http.StatusOK)
	response := decodeResponse(t, recorder)
	if response["available"] != false {
		t.Errorf("available = %v, want false", response["available"])
	}

	recorder = performRequest(router, http.MethodPost, "/api/shop/check-name", token, map[string]string{
		"shopName": "Ravi Weaves",
	})
	expectStatus(t, recorder, http.StatusOK)
	response = decodeResponse(t, recorder)
	if response["available"] != true {
		t.Errorf("available = %v, want true", response["available"])
	}
}

func TestCreateShop(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	recorder := performRequest(router, http.MethodPost, "/api/shop/create", token, map[string]string{
		"shopName": "  Meera Ceramics  ",
	})
	expectStatus(t, recorder, http.StatusCreated)

	var shop models.Shop
	if err := db.Where("owner_id = ?", artist.ID).First(&shop).Error; err != nil {
		t.Fatalf("load shop: %v", err)
	}
	if shop.Name != "Meera Ceramics" {
		t.Errorf("name = %q, want trimmed", shop.Name)
	}

	recorder = performRequest(router, http.MethodPost, "/api/shop/create", token, map[string]string{
		"shopName": "   ",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestGetShopDetailsWithoutShop(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	recorder := performRequest(router, http.MethodGet, "/api/shop/details", token, nil)
	expectStatus(t, recorder, http.StatusNotFound)
}

func TestGetShopSales(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, artist)
	product := createTestProduct(t, db, artist.ID, "clay vase", 500)

	shop := models.Shop{Name: "Meera Ceramics", OwnerID: artist.ID}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	sale := models.Sale{
		ProductID: product.ID, OrderID: 1, BuyerID: buyer.ID,
		SellerID: artist.ID, Quantity: 2, Amount: 1000,
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("create sale: %v", err)
	}

	recorder := performRequest(router, http.MethodGet, "/api/shop/sales", token, nil)
	expectStatus(t, recorder, http.StatusOK)
	response := decodeResponse(t, recorder)
	data := response["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("sales = %d, want 1", len(data))
	}
	entry := data[0].(map[string]interface{})
	if entry["amount"].(float64) != 1000 {
		t.Errorf("amount = %v, want 1000", entry["amount"])
	}
	buyerData := entry["buyer"].(map[string]interface{})
	if buyerData["name"] != buyer.Name {
		t.Errorf("buyer name = %v, want %q", buyerData["name"], buyer.Name)
	}
}
