package models

type TeamMember struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Role            string `gorm:"not null" json:"role"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
	PhotoURL        string `json:"photo_url"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`
}
