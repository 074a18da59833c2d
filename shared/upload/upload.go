package upload

//go:generate go run go.uber.org/mock/mockgen -source=./upload.go -destination=./mocks/upload_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/infras/s3"
	"proccms/shared/failure"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	// PublicPath is the route local uploads are served from.
	PublicPath = "/uploads"

	s3Directory = "uploads"
	bytesPerMB  = 1024 * 1024
)

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

	allowedExtensions = []string{".jpeg", ".jpg", ".png", ".gif", ".pdf", ".doc", ".docx", ".txt"}
	allowedMimeTypes  = []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"application/pdf",
		"application/msword",
		"application/x-ole-storage",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip",
		"text/plain",
	}

	ErrFileType = failure.BadRequestFromString("Only image and document files are allowed")
)

// File is an uploaded attachment held in memory.
type File struct {
	Name string
	Data []byte
}

// Storage persists attachments and returns the URL clients fetch them from.
type Storage interface {
	Save(ctx context.Context, file File) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// New returns the storage selected by UPLOAD_DRIVER.
func New(cfg *config.Config, s3Client s3.S3, otl otel.Otel) Storage {
	if cfg.Upload.Driver == DriverS3 {
		return &s3Storage{cfg: cfg, client: s3Client, otel: otl}
	}

	return &localStorage{cfg: cfg, otel: otl}
}

// FileName builds the stored name: "<unix millis>-<original name with unsafe characters replaced>".
func FileName(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), unsafeNameChars.ReplaceAllString(filepath.Base(original), "_"))
}

// Check rejects files over maxSizeMB or outside the allowed image and document types.
// Both the extension and the sniffed content must be allowed.
func Check(file File, maxSizeMB float64) (string, error) {
	if maxSizeMB > 0 && float64(len(file.Data)) > maxSizeMB*bytesPerMB {
		return "", failure.BadRequestFromString(fmt.Sprintf("File too large. Maximum size is %gMB", maxSizeMB)) //nolint:wrapcheck
	}

	if !slices.Contains(allowedExtensions, strings.ToLower(filepath.Ext(file.Name))) {
		return "", ErrFileType
	}

	detected := mimetype.Detect(file.Data)
	for _, allowed := range allowedMimeTypes {
		if detected.Is(allowed) {
			return detected.String(), nil
		}
	}

	return "", ErrFileType
}
