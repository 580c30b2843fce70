package storage

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaxUploadBytes caps payment screenshots and other attachments.
const MaxUploadBytes = 8 << 20 // 8 MB

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadDir is where attachments land; served back under /uploads.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// UniqueName builds a collision-free filename for an upload. Names are made
// unique at write time so existing references are never overwritten.
func UniqueName(original string) string {
	cleanName := unsafeChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], cleanName)
}
