package models

import "time"

// PaymentQR is the UPI code customers scan to pay before uploading their
// payment screenshot at checkout. The newest row is the one in use.
type PaymentQR struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UpiID     string    `gorm:"not null" json:"upi_id"`
	PayeeName string    `json:"payee_name"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
