package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/metrics"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/storage"

	"github.com/google/uuid"
)

// DocumentPrefix is the storage prefix shared by all invoice documents.
const DocumentPrefix = "invoices/"

// DefaultMaxDocumentSize is 1 MiB.
const DefaultMaxDocumentSize int64 = 1 << 20

var allowedDocumentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type documentService struct {
	store   storage.StorageInterface
	maxSize int64
	clock   reminder.Clock
	metrics metrics.Recorder
}

func NewDocumentService(store storage.StorageInterface, maxSize int64, clock reminder.Clock, recorder metrics.Recorder) DocumentService {
	if maxSize <= 0 {
		maxSize = DefaultMaxDocumentSize
	}
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &documentService{store: store, maxSize: maxSize, clock: clock, metrics: recorder}
}

// OwnerPrefix returns the key prefix of documents uploaded by ownerID.
func OwnerPrefix(ownerID int32) string {
	return fmt.Sprintf("%s%d/", DocumentPrefix, ownerID)
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "document"
	}
	return name
}

func (s *documentService) UploadDocument(ctx context.Context, ownerID int32, filename, contentType string, size int64, body io.Reader) (*domain.Document, error) {
	logger.EnterMethod("documentService.UploadDocument", "ownerID", ownerID, "contentType", contentType, "size", size)

	if !allowedDocumentTypes[contentType] {
		err := domain.NewValidationError("content_type", "only JPEG, PNG and WebP images are accepted")
		s.metrics.RecordDocumentUpload(0, err)
		return nil, err
	}
	if size > s.maxSize {
		err := domain.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxSize))
		s.metrics.RecordDocumentUpload(0, err)
		return nil, err
	}

	key := OwnerPrefix(ownerID) + uuid.NewString() + "-" + sanitizeFileName(filename)
	// Read one byte past the limit so an understated size is still caught.
	written, err := s.store.SaveFile(ctx, key, io.LimitReader(body, s.maxSize+1))
	if err == nil && written > s.maxSize {
		_ = s.store.DeleteFile(ctx, key)
		err = domain.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxSize))
	}
	s.metrics.RecordDocumentUpload(written, err)
	if err != nil {
		logger.ExitMethodWithError("documentService.UploadDocument", err, "key", key)
		return nil, err
	}

	doc := &domain.Document{
		Key:         key,
		OwnerID:     ownerID,
		FileName:    filename,
		ContentType: contentType,
		Size:        written,
		UploadedAt:  s.clock.Now(),
	}
	logger.ExitMethod("documentService.UploadDocument", "key", key, "size", written)
	return doc, nil
}

func (s *documentService) ownsKey(ownerID int32, key string) bool {
	return strings.HasPrefix(key, OwnerPrefix(ownerID)) && !strings.Contains(key, "..")
}

func (s *documentService) OpenDocument(ctx context.Context, ownerID int32, key string) (io.ReadCloser, error) {
	if !s.ownsKey(ownerID, key) {
		return nil, domain.ErrNotFound
	}
	rc, err := s.store.ReadFile(ctx, key)
	if errors.Is(err, storage.ErrFileNotFound) {
		return nil, domain.ErrNotFound
	}
	return rc, err
}

func (s *documentService) VerifyDocument(ctx context.Context, ownerID int32, key string) error {
	if !s.ownsKey(ownerID, key) {
		return domain.NewValidationError("invoice_key", "unknown invoice document")
	}
	exists, _, err := s.store.FileExists(ctx, key)
	if err != nil {
		return fmt.Errorf("check invoice document: %w", err)
	}
	if !exists {
		return domain.NewValidationError("invoice_key", "unknown invoice document")
	}
	return nil
}
