package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// ExtensionForContentType maps an accepted image content type to a file
// extension.
func ExtensionForContentType(contentType string) (string, error) {
	ct := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if ext, ok := imageExtensions[strings.ToLower(ct)]; ok {
		return ext, nil
	}
	return "", fmt.Errorf("unsupported image content type '%s'", contentType)
}

// TeamLogoKey builds the object key of a club logo. version keeps replaced
// logos from being served out of a CDN cache.
func TeamLogoKey(teamID int, version int64, ext string) string {
	return fmt.Sprintf("logos/teams/%d/%d%s", teamID, version, ext)
}
