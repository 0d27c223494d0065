// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"kldcms/internal/models"
)

// allowedMediaTypes defines MIME types accepted for upload. The type is
// always sniffed from file content, never trusted from the filename.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"video/mp4":       true,
	"video/webm":      true,
	"application/pdf": true,
}

// MediaList returns uploaded files, newest first, with the aggregate
// storage used. Supports a type=image|video|document filter.
func (a *Admin) MediaList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	mediaType := r.URL.Query().Get("type")

	items, err := a.media.List(mediaType, limit, (page-1)*limit)
	if err != nil {
		slog.Error("media list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	total, err := a.media.Count(mediaType)
	if err != nil {
		slog.Error("media count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	totalSize, err := a.media.TotalSize()
	if err != nil {
		slog.Error("media total size failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":       items,
		"pagination": newPagination(page, limit, total),
		"totalSize":  totalSize,
	})
}

// MediaUpload handles a multipart file upload: size cap first, then MIME
// sniffing from content, then the two-phase write (file, then metadata
// row; the file is removed again if the row insert fails).
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload+1024)
	if err := r.ParseMultipartForm(a.maxUpload); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d MB.", a.maxUpload>>20))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > a.maxUpload {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d MB.", a.maxUpload>>20))
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	// SVG detection: DetectContentType reports XML or plain text for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process file.")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)

	ctx := r.Context()
	url, err := a.files.Save(ctx, filename, contentType, file, header.Size)
	if err != nil {
		slog.Error("media file write failed", "filename", filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store file.")
		return
	}

	created, err := a.media.Create(&models.Media{
		Name:     header.Filename,
		URL:      url,
		Type:     models.MediaTypeFromMIME(contentType),
		Size:     header.Size,
		MimeType: contentType,
	})
	if err != nil {
		// Remove the orphaned file; the upload failed as a whole.
		if delErr := a.files.Delete(ctx, url); delErr != nil {
			slog.Warn("orphaned upload cleanup failed", "url", url, "error", delErr)
		}
		slog.Error("media db insert failed", "filename", filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save file metadata.")
		return
	}

	a.flush(ctx)
	writeJSON(w, http.StatusCreated, created)
}

// MediaDelete removes a media item. The database row goes first; the
// stored file is cleaned up best-effort, tolerating one already missing.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := a.media.Delete(id)
	if err != nil {
		slog.Error("media db delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	if deleted == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.files.Delete(r.Context(), deleted.URL); err != nil {
		slog.Warn("media file delete failed", "url", deleted.URL, "error", err)
	}

	a.flush(r.Context())
	writeSuccess(w)
}

// randomSuffix returns six hex characters for upload filenames.
func randomSuffix() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// Fall back to a time-derived suffix; collisions are still
		// prevented by the millisecond prefix.
		return fmt.Sprintf("%06x", time.Now().UnixNano()&0xffffff)
	}
	return hex.EncodeToString(b)
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
