package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/cart"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"github.com/vsingh23cs-cell/doxa-salon-management/storage"
	"gorm.io/gorm"
)

// ErrEmptyCart aborts a checkout before anything is written.
var ErrEmptyCart = errors.New("cart is empty")

type PlaceOrderInput struct {
	CustomerName  string
	Phone         string
	Email         string
	Address       string
	ScreenshotURL string
}

// -------- Core Logic --------

// PlaceOrder converts the user's current cart into a durable order.
//
// The whole conversion is one transaction: snapshot the cart joined with
// current prices, sum the total, insert the order with its frozen line
// items, clear the cart. Either everything commits or nothing does: an
// order without items, or a cleared cart without an order, must be
// impossible. Product price changes after the snapshot never alter the
// order.
func PlaceOrder(db *gorm.DB, userID uint, input PlaceOrderInput) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		snapshot, err := cartControllers.LoadCart(tx, userID)
		if err != nil {
			return err
		}
		if len(snapshot) == 0 {
			return ErrEmptyCart
		}

		var total float64
		var orderItems []models.OrderItem
		for _, row := range snapshot {
			total += row.Price * float64(row.Qty)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: row.ProductID,
				Name:      row.Name,
				Qty:       row.Qty,
				PriceEach: row.Price,
			})
		}

		order = models.Order{
			UserID:            userID,
			Items:             orderItems,
			CustomerName:      input.CustomerName,
			Phone:             input.Phone,
			Email:             input.Email,
			Address:           input.Address,
			TotalAmount:       total,
			Status:            models.OrderStatusProcessing,
			PaymentScreenshot: input.ScreenshotURL,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear exactly the rows the snapshot was built from.
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// -------- Handlers --------

// POST /api/orders (multipart: customer_name, phone, email?, address,
// payment_screenshot?)
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		input := PlaceOrderInput{
			CustomerName: strings.TrimSpace(c.PostForm("customer_name")),
			Phone:        strings.TrimSpace(c.PostForm("phone")),
			Email:        strings.TrimSpace(c.PostForm("email")),
			Address:      strings.TrimSpace(c.PostForm("address")),
		}
		if input.CustomerName == "" || input.Phone == "" || input.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		// The screenshot is written before the transaction; a stored file
		// without an order is harmless, the reverse is not.
		if file, err := c.FormFile("payment_screenshot"); err == nil {
			if file.Size > storage.MaxUploadBytes {
				c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
				return
			}
			dir := storage.UploadDir()
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				logger.Log.Error("upload dir create failed", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
				return
			}
			filename := storage.UniqueName(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
				logger.Log.Error("screenshot save failed", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
				return
			}
			input.ScreenshotURL = fmt.Sprintf("/uploads/%s", filename)
		}

		order, err := PlaceOrder(db, userID, input)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			logger.Log.Error("order placement failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusOK, gin.H{"ok": true, "orderId": order.ID, "status": order.Status})
	}
}

// GET /api/orders/:id is owner-scoped. A missing order and someone else's
// order are indistinguishable to the caller.
func GetMyOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		orderID := c.Param("id")

		var order models.Order
		err := db.Preload("Items").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			logger.Log.Error("order fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders lists the caller's own orders, newest first.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logger.Log.Error("orders fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
