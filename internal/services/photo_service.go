package services

import (
	"Shelf/internal/storage"
	"Shelf/internal/validation"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	photoField    = "photo"
	photoPrefix   = "photos/"
	maxPhotoBytes = 2048 * 1024
)

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// PhotoService validates uploaded photos and keeps them in storage. The
// returned key is what entities record as photo_path.
type PhotoService interface {
	Validate(photo *multipart.FileHeader, errs *validation.Error)
	Store(ctx context.Context, photo *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, path *string)
}

type photoServiceImpl struct {
	storage    storage.Storage
	logService LogService
}

func NewPhotoService(store storage.Storage, logService LogService) PhotoService {
	return &photoServiceImpl{storage: store, logService: logService}
}

func (s *photoServiceImpl) Validate(photo *multipart.FileHeader, errs *validation.Error) {
	if photo == nil {
		return
	}
	contentType, err := sniffContentType(photo)
	if err != nil {
		errs.Add(photoField, "The photo failed to upload.")
		return
	}
	if _, ok := photoExtensions[contentType]; !ok {
		errs.Add(photoField, "The photo field must be a file of type: jpeg, png.")
	}
	if photo.Size > maxPhotoBytes {
		errs.Add(photoField, fmt.Sprintf("The photo field must not be greater than %d kilobytes.", maxPhotoBytes/1024))
	}
}

func (s *photoServiceImpl) Store(ctx context.Context, photo *multipart.FileHeader) (string, error) {
	contentType, err := sniffContentType(photo)
	if err != nil {
		return "", err
	}
	extension, ok := photoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported photo type %s", contentType)
	}
	src, err := photo.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := photoPrefix + uuid.NewString() + "." + extension
	info, err := s.storage.Put(ctx, key, src, storage.PutObjectOptions{Size: photo.Size, ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}
	s.logService.Log.WithFields(logrus.Fields{
		"photo":    key,
		"size":     info.Size,
		"checksum": info.Checksum,
	}).Debug("photo stored")
	return key, nil
}

// Remove deletes a stored photo. Paths outside the photos prefix were not
// written by Store and are left alone. Failures are only logged.
func (s *photoServiceImpl) Remove(ctx context.Context, path *string) {
	if path == nil || !strings.HasPrefix(*path, photoPrefix) {
		return
	}
	if err := s.storage.Delete(ctx, *path); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"photo": *path,
			"error": err.Error(),
		}).Warn("failed to remove photo")
	}
}

func sniffContentType(photo *multipart.FileHeader) (string, error) {
	src, err := photo.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}
