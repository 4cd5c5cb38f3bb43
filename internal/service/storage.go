package service

import (
	"context"
	"mime/multipart"
)

// PhotoStore saves an uploaded photo and returns its storage key. Keys
// are relative paths of the form <folder>/<timestamp>-<filename>;
// clients resolve them against the configured base URL.
type PhotoStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

var allowedPhotoTypes = []string{
	"image/jpeg",
	"image/png",
}

func allowedContentType(contentType string) bool {
	for _, t := range allowedPhotoTypes {
		if contentType == t {
			return true
		}
	}
	return false
}
