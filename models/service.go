package models

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
