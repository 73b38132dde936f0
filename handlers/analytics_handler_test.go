package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Meenakshi-Adapa/CraftHub/models"
)

func TestGetPerformance(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	first := createTestUser(t, db, "first@example.com", models.RoleUser)
	second := createTestUser(t, db, "second@example.com", models.RoleUser)
	token := loginTestUser(t, db, artist)

	vase := createTestProduct(t, db, artist.ID, "clay vase", 500)
	basket := createTestProduct(t, db, artist.ID, "woven basket", 120)
	db.Model(vase).Update("average_rating", 4.0)
	db.Model(basket).Update("average_rating", 3.0)

	sales := []models.Sale{
		{ProductID: vase.ID, OrderID: 1, BuyerID: first.ID, SellerID: artist.ID, Quantity: 1, Amount: 500},
		{ProductID: basket.ID, OrderID: 2, BuyerID: first.ID, SellerID: artist.ID, Quantity: 2, Amount: 240},
		{ProductID: vase.ID, OrderID: 3, BuyerID: second.ID, SellerID: artist.ID, Quantity: 1, Amount: 500},
	}
	if err := db.Create(&sales).Error; err != nil {
		t.Fatalf("create sales: %v", err)
	}

	recorder := performRequest(router, http.MethodGet, "/api/analytics/performance", token, nil)
	expectStatus(t, recorder, http.StatusOK)

	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	if got := data["totalSales"].(float64); got != 3 {
		t.Errorf("totalSales = %v, want 3", got)
	}
	if got := data["totalRevenue"].(float64); got != 1240 {
		t.Errorf("totalRevenue = %v, want 1240", got)
	}
	if got := data["totalCustomers"].(float64); got != 2 {
		t.Errorf("totalCustomers = %v, want 2", got)
	}
	if got := data["averageRating"].(float64); got != 3.5 {
		t.Errorf("averageRating = %v, want 3.5", got)
	}
	recent := data["recentSales"].([]interface{})
	if len(recent) != 3 {
		t.Errorf("recentSales = %d, want 3", len(recent))
	}
	products := data["products"].([]interface{})
	if len(products) != 2 {
		t.Errorf("products = %d, want 2", len(products))
	}
}

func TestGetPerformanceEmpty(t *testing.T) {
	router, db := setupTestRouter(t)
	artist := createTestUser(t, db, "artist@example.com", models.RoleArtist)
	token := loginTestUser(t, db, artist)

	recorder := performRequest(router, http.MethodGet, "/api/analytics/performance", token, nil)
	expectStatus(t, recorder, http.StatusOK)

	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	if got := data["totalSales"].(float64); got != 0 {
		t.Errorf("totalSales = %v, want 0", got)
	}
	if got := data["averageRating"].(float64); got != 0 {
		t.Errorf("averageRating = %v, want 0 with no rated products", got)
	}
}

func TestGetPerformanceRequiresArtist(t *testing.T) {
	router, db := setupTestRouter(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleUser)
	token := loginTestUser(t, db, buyer)

	recorder := performRequest(router, http.MethodGet, "/api/analytics/performance", token, nil)
	expectStatus(t, recorder, http.StatusForbidden)
}
