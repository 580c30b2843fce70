package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"product_id"`
	Qty       *int `json:"qty"` // omitted means 1
}

type UpdateItemInput struct {
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

type RemoveItemInput struct {
	ProductID uint `json:"product_id"`
}

// CartRow is a cart item joined with the current product name and price.
type CartRow struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// POST /api/cart/add
//
// Merge semantics: an existing (user, product) row gets its quantity
// incremented, otherwise a new row is inserted. The read-then-write runs
// inside one transaction so concurrent adds never produce duplicate rows.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
			return
		}

		qty := 1
		if input.Qty != nil {
			qty = *input.Qty
		}
		if qty <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "qty must be positive"})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND is_active = ?", input.ProductID, true).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			logger.Log.Error("product lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var item models.CartItem
			err := tx.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&models.CartItem{
					UserID:    userID,
					ProductID: product.ID,
					Qty:       qty,
					AddedAt:   time.Now(),
				}).Error
			}
			if err != nil {
				return err
			}
			item.Qty += qty
			item.AddedAt = time.Now()
			return tx.Save(&item).Error
		})
		if err != nil {
			logger.Log.Error("cart add failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /api/cart/update
//
// Sets the quantity to exactly qty. Zero or below deletes the row, which is
// how the pages implement the "-" button; deleting a missing row is fine.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
			return
		}

		if input.Qty <= 0 {
			if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
				Delete(&models.CartItem{}).Error; err != nil {
				logger.Log.Error("cart delete failed", "user_id", userID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"ok": true, "removed": true})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			Updates(map[string]interface{}{"qty": input.Qty, "added_at": time.Now()})
		if result.Error != nil {
			logger.Log.Error("cart update failed", "user_id", userID, "error", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item not in cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /api/cart/remove
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
			return
		}

		if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			Delete(&models.CartItem{}).Error; err != nil {
			logger.Log.Error("cart remove failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		rows, err := LoadCart(db, userID)
		if err != nil {
			logger.Log.Error("cart fetch failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}

// LoadCart reads the user's cart joined with current product name and price.
// The checkout engine uses the same query as its snapshot read.
func LoadCart(db *gorm.DB, userID uint) ([]CartRow, error) {
	rows := []CartRow{}
	err := db.Model(&models.CartItem{}).
		Select("cart_items.product_id, products.name, products.price, cart_items.qty").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&rows).Error
	return rows, err
}
