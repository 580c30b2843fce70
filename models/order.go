package models

import "time"

type OrderStatus string

const (
	// Orders start in Processing and move to Approved or Rejected once an
	// admin has checked the payment screenshot.
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusApproved   OrderStatus = "Approved"
	OrderStatusRejected   OrderStatus = "Rejected"
)

type Order struct {
	ID                uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint        `gorm:"not null;index" json:"user_id"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CustomerName      string      `gorm:"not null" json:"customer_name"`
	Phone             string      `gorm:"not null" json:"phone"`
	Email             string      `json:"email"`
	Address           string      `gorm:"not null" json:"address"`
	TotalAmount       float64     `gorm:"not null" json:"total_amount"`
	Status            OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`
	PaymentScreenshot string      `json:"payment_screenshot"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderItem freezes name and price at purchase time, so later product edits
// never change what a placed order says it cost.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `gorm:"not null" json:"qty"`
	PriceEach float64 `gorm:"not null" json:"price_each"`
}
