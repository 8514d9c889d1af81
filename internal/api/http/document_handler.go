package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/service"
)

// multipartOverhead is the slack allowed on top of the file limit for form headers.
const multipartOverhead = 64 << 10

// DocumentHandler stores and serves invoice photos
type DocumentHandler struct {
	svc     service.DocumentService
	maxSize int64
}

func NewDocumentHandler(svc service.DocumentService, maxSize int64) *DocumentHandler {
	if maxSize <= 0 {
		maxSize = service.DefaultMaxDocumentSize
	}
	return &DocumentHandler{svc: svc, maxSize: maxSize}
}

// Upload accepts a multipart form with a single "file" part
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, domain.NewValidationError("file", "file is too large"))
			return
		}
		writeError(w, r, domain.NewValidationError("file", "a file part is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = contentTypeFromName(header.Filename)
	}

	doc, err := h.svc.UploadDocument(r.Context(), userID, header.Filename, contentType, header.Size, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// Download streams the document named by the key query parameter
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, r, domain.NewValidationError("key", "missing key parameter"))
		return
	}

	rc, err := h.svc.OpenDocument(r.Context(), userID, key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentTypeFromName(key))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, rc)
}

func contentTypeFromName(name string) string {
	switch filepath.Ext(name) {
	case ".jpg", ".jpeg", ".JPG", ".JPEG":
		return "image/jpeg"
	case ".png", ".PNG":
		return "image/png"
	case ".webp", ".WEBP":
		return "image/webp"
	}
	return "application/octet-stream"
}
