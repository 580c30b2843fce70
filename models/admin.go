package models

import "time"

// Admin accounts are seeded at startup, never self-registered. They live in
// their own table so admin identity can never collide with customer identity.
type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
