package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// One connection so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testRouter mounts the cart handlers behind a stub that fixes the
// authenticated user, the way the session middleware would.
func testRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asUser := func(c *gin.Context) { c.Set("user_id", userID) }
	r.GET("/api/cart", asUser, GetCart(db))
	r.POST("/api/cart/add", asUser, AddCartItem(db))
	r.POST("/api/cart/update", asUser, UpdateCartItem(db))
	r.POST("/api/cart/remove", asUser, RemoveCartItem(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getCartRows(t *testing.T, r *gin.Engine) []CartRow {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/cart: status %d", w.Code)
	}
	var rows []CartRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal cart: %v", err)
	}
	return rows
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Category: "Hair", Price: price, IsActive: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestAddMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Argan Oil", 500)
	r := testRouter(db, 1)

	q1, q2 := 2, 3
	if w := postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q1}); w.Code != http.StatusOK {
		t.Fatalf("first add: status %d", w.Code)
	}
	if w := postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q2}); w.Code != http.StatusOK {
		t.Fatalf("second add: status %d", w.Code)
	}

	var items []models.CartItem
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("find items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d rows for one (user, product) pair, want 1", len(items))
	}
	if items[0].Qty != q1+q2 {
		t.Fatalf("got qty %d, want %d", items[0].Qty, q1+q2)
	}
}

func TestAddDefaultsToQtyOne(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Hair Serum", 300)
	r := testRouter(db, 1)

	if w := postJSON(t, r, "/api/cart/add", map[string]interface{}{"product_id": p.ID}); w.Code != http.StatusOK {
		t.Fatalf("add without qty: status %d", w.Code)
	}

	rows := getCartRows(t, r)
	if len(rows) != 1 || rows[0].Qty != 1 {
		t.Fatalf("got %+v, want one row with qty 1", rows)
	}
}

func TestAddRejectsUnknownProductAndBadQty(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Face Pack", 250)
	r := testRouter(db, 1)

	if w := postJSON(t, r, "/api/cart/add", map[string]interface{}{"product_id": 9999}); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown product: status %d, want 400", w.Code)
	}

	zero := 0
	if w := postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &zero}); w.Code != http.StatusBadRequest {
		t.Fatalf("qty 0: status %d, want 400", w.Code)
	}

	if w := postJSON(t, r, "/api/cart/add", map[string]interface{}{}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing product_id: status %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected adds wrote %d rows", count)
	}
}

func TestUpdateSetsExactQuantity(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Shampoo", 450)
	r := testRouter(db, 1)

	q := 2
	postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q})
	if w := postJSON(t, r, "/api/cart/update", UpdateItemInput{ProductID: p.ID, Qty: 5}); w.Code != http.StatusOK {
		t.Fatalf("update: status %d", w.Code)
	}

	rows := getCartRows(t, r)
	if len(rows) != 1 || rows[0].Qty != 5 {
		t.Fatalf("got %+v, want qty set to exactly 5", rows)
	}
}

func TestUpdateToZeroRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Conditioner", 350)
	r := testRouter(db, 1)

	q := 1
	postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q})

	w := postJSON(t, r, "/api/cart/update", UpdateItemInput{ProductID: p.ID, Qty: 0})
	if w.Code != http.StatusOK {
		t.Fatalf("update to 0: status %d", w.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["removed"] != true {
		t.Fatalf("got %v, want removed=true", resp)
	}

	if rows := getCartRows(t, r); len(rows) != 0 {
		t.Fatalf("row still listed after qty 0: %+v", rows)
	}

	// Deleting what is already gone is not an error.
	if w := postJSON(t, r, "/api/cart/update", UpdateItemInput{ProductID: p.ID, Qty: -1}); w.Code != http.StatusOK {
		t.Fatalf("repeat delete: status %d", w.Code)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Hair Spa Kit", 1200)
	r := testRouter(db, 1)

	q := 2
	postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q})

	for i := 0; i < 2; i++ {
		if w := postJSON(t, r, "/api/cart/remove", RemoveItemInput{ProductID: p.ID}); w.Code != http.StatusOK {
			t.Fatalf("remove #%d: status %d", i+1, w.Code)
		}
	}

	if rows := getCartRows(t, r); len(rows) != 0 {
		t.Fatalf("cart not empty after remove: %+v", rows)
	}
}

func TestGetCartJoinsProductNameAndPrice(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "Argan Oil", 500)
	b := seedProduct(t, db, "Hair Serum", 300)
	r := testRouter(db, 1)

	q2, q1 := 2, 1
	postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: a.ID, Qty: &q2})
	postJSON(t, r, "/api/cart/add", AddItemInput{ProductID: b.ID, Qty: &q1})

	rows := getCartRows(t, r)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Argan Oil" || rows[0].Price != 500 || rows[0].Qty != 2 {
		t.Fatalf("first row wrong: %+v", rows[0])
	}
	if rows[1].Name != "Hair Serum" || rows[1].Price != 300 || rows[1].Qty != 1 {
		t.Fatalf("second row wrong: %+v", rows[1])
	}
}

func TestCartsAreScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Face Pack", 250)

	userOne := testRouter(db, 1)
	userTwo := testRouter(db, 2)

	q := 3
	postJSON(t, userOne, "/api/cart/add", AddItemInput{ProductID: p.ID, Qty: &q})

	if rows := getCartRows(t, userTwo); len(rows) != 0 {
		t.Fatalf("user 2 sees user 1's cart: %+v", rows)
	}
}
