package appointmentControllers

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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Service{}, &models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func book(t *testing.T, db *gorm.DB, input interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/appointments", BookAppointment(db))

	payload, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBookingFreezesServiceDetails(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Name: "Hair Spa", Category: "Hair", Price: 1500, IsActive: true}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	w := book(t, db, BookingInput{
		ClientName: "Asha",
		Phone:      "9998887777",
		ServiceID:  service.ID,
		ApptDate:   "2026-09-01",
		ApptTime:   "15:30",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("book: status %d (body %s)", w.Code, w.Body.String())
	}

	var appt models.Appointment
	if err := db.First(&appt).Error; err != nil {
		t.Fatalf("find appointment: %v", err)
	}
	if appt.Status != models.AppointmentStatusPending {
		t.Fatalf("got status %q, want Pending", appt.Status)
	}
	if appt.ServiceName != "Hair Spa" || appt.ServiceCategory != "Hair" {
		t.Fatalf("frozen fields wrong: %+v", appt)
	}

	// Renaming the service later must not rewrite the booking.
	db.Model(&models.Service{}).Where("id = ?", service.ID).Update("name", "Luxury Hair Spa")
	db.First(&appt)
	if appt.ServiceName != "Hair Spa" {
		t.Fatalf("booking followed service rename: %q", appt.ServiceName)
	}
}

func TestBookingRejectsUnknownService(t *testing.T) {
	db := setupTestDB(t)

	w := book(t, db, BookingInput{
		ClientName: "Asha",
		Phone:      "9998887777",
		ServiceID:  1234,
		ApptDate:   "2026-09-01",
		ApptTime:   "15:30",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown service: status %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected booking created %d rows", count)
	}
}

func TestBookingRejectsInactiveService(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Name: "Retired", Category: "Skin", Price: 900, IsActive: false}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	w := book(t, db, BookingInput{
		ClientName: "Asha",
		Phone:      "9998887777",
		ServiceID:  service.ID,
		ApptDate:   "2026-09-01",
		ApptTime:   "15:30",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inactive service: status %d, want 400", w.Code)
	}
}

func TestBookingRequiresFields(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Name: "Hair Spa", Category: "Hair", Price: 1500, IsActive: true}
	db.Create(&service)

	cases := []BookingInput{
		{Phone: "999", ServiceID: service.ID, ApptDate: "2026-09-01", ApptTime: "15:30"},
		{ClientName: "Asha", ServiceID: service.ID, ApptDate: "2026-09-01", ApptTime: "15:30"},
		{ClientName: "Asha", Phone: "999", ServiceID: service.ID, ApptTime: "15:30"},
		{ClientName: "   ", Phone: "999", ServiceID: service.ID, ApptDate: "2026-09-01", ApptTime: "15:30"},
	}
	for i, input := range cases {
		if w := book(t, db, input); w.Code != http.StatusBadRequest {
			t.Fatalf("case %d: status %d, want 400", i, w.Code)
		}
	}
}
