package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
)

// Appointment keeps its own copy of the service name and category, frozen at
// booking time. Deleting or renaming a service never corrupts history.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientName      string            `gorm:"not null" json:"client_name"`
	Phone           string            `gorm:"not null" json:"phone"`
	Email           string            `json:"email"`
	ServiceID       uint              `gorm:"not null" json:"service_id"`
	ServiceName     string            `json:"service_name"`
	ServiceCategory string            `json:"service_category"`
	ApptDate        string            `gorm:"not null" json:"appt_date"`
	ApptTime        string            `gorm:"not null" json:"appt_time"`
	Notes           string            `json:"notes"`
	Status          AppointmentStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}
