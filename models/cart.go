package models

import "time"

// CartItem holds one (user, product) pair. The composite unique index keeps
// concurrent adds from creating duplicate rows. Quantity is always >= 1;
// a row that would drop to zero is deleted instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"product_id"`
	Qty       int       `gorm:"not null" json:"qty"`
	AddedAt   time.Time `json:"added_at"`
}
