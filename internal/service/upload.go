package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LocalStore keeps photos on the local disk under BaseDir. The returned
// key is relative to BaseDir so the /media file server can resolve it.
type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedContentType(contentType) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", allowedPhotoTypes, contentType)
	}

	targetDir := filepath.Join(s.BaseDir, folder)
	if _, err := os.Stat(targetDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
			return "", errors.Wrap(err, "creating upload dir")
		}
	}

	key := filepath.Join(folder, time.Now().Format(time.RFC3339)+"-"+filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "opening upload")
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("photo upload src close failed")
		}
	}()

	out, err := os.Create(filepath.Join(s.BaseDir, key))
	if err != nil {
		return "", errors.Wrap(err, "creating upload file")
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("photo upload out close failed")
		}
	}()

	if _, err := io.Copy(out, src); err != nil {
		return "", errors.Wrap(err, "writing upload file")
	}

	return key, nil
}
