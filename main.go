package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vsingh23cs-cell/doxa-salon-management/auth"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"github.com/vsingh23cs-cell/doxa-salon-management/routes"
	"github.com/vsingh23cs-cell/doxa-salon-management/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger.Log.Info("Starting DOXA salon backend...")

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.Service{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Appointment{},
		&models.TeamMember{},
		&models.PaymentQR{},
	); err != nil {
		logger.Log.Error("AutoMigrate failed", "error", err)
		os.Exit(1)
	}

	// Admin accounts are seeded, never self-registered
	seedAdmin(db)

	// Gin setup
	r := gin.Default()

	// Payment screenshots are capped at 8 MB
	r.MaxMultipartMemory = storage.MaxUploadBytes

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded files (payment screenshots, QR images)
	uploadsDir := storage.UploadDir()
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db)

	// Screenshots are the only payment proof; back them up daily at 2 AM,
	// keep 4 days of backups.
	backupDir := filepath.Join(filepath.Dir(uploadsDir), "backup", "uploads")
	go startDailyBackupAtFixedTime(uploadsDir, backupDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	logger.Log.Info("Server running", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Log.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Log.Error("DB connection failed", "error", err)
			os.Exit(1)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Error("Failed to connect DB", "error", err)
		os.Exit(1)
	}
	return db
}

// seedAdmin creates the back-office account from env on first boot.
func seedAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.Admin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Log.Error("admin seed hash failed", "error", err)
		return
	}
	if err := db.Create(&models.Admin{Username: username, PasswordHash: hash}).Error; err != nil {
		logger.Log.Error("admin seed failed", "error", err)
		return
	}
	logger.Log.Info("Seeded admin account", "username", username)
}

// startDailyBackupAtFixedTime backs up uploads daily at a fixed hour and
// removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		logger.Log.Info("Next uploads backup scheduled", "at", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			logger.Log.Error("Failed to back up uploads", "error", err)
		} else {
			logger.Log.Info("Uploads backed up", "dest", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		logger.Log.Error("Failed to read backup directory", "error", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				logger.Log.Error("Failed to remove old backup", "path", folderPath, "error", err)
			} else {
				logger.Log.Info("Removed old backup", "path", folderPath)
			}
		}
	}
}
