// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"kldcms/internal/content"
	"kldcms/internal/database"
	"kldcms/internal/models"
	"kldcms/internal/storage"
	"kldcms/internal/store"
)

const testMaxUpload = 1 << 20

// brokenAdmin returns an Admin over an unreachable database, with local
// file storage in a temp directory.
func brokenAdmin(t *testing.T) (*Admin, string) {
	t.Helper()
	db := brokenDB(t)
	svc := content.NewService(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	dir := t.TempDir()
	files, err := storage.NewLocal(dir, "/uploads")
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	return NewAdmin(db, svc, nil, files, testMaxUpload), dir
}

// multipartBody builds a multipart request body with a single file field.
func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

// pngBytes returns a buffer starting with the PNG signature, padded to
// the requested size, so content sniffing reports image/png.
func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	return b
}

func TestDashboardFailSoft(t *testing.T) {
	a, _ := brokenAdmin(t)
	w := httptest.NewRecorder()
	a.Dashboard(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !json.Valid(w.Body.Bytes()) {
		t.Error("response is not JSON")
	}
}

func TestSlugify(t *testing.T) {
	a, _ := brokenAdmin(t)
	w := httptest.NewRecorder()
	a.Slugify(w, httptest.NewRequest(http.MethodGet, "/api/slugify?text=Oil+%26+Gas+Services", nil))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["slug"] != "oil-gas-services" {
		t.Errorf("slug = %q, want %q", body["slug"], "oil-gas-services")
	}
}

func TestDeleteInvalidID(t *testing.T) {
	a, _ := brokenAdmin(t)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "not-a-uuid")
	r := httptest.NewRequest(http.MethodDelete, "/api/media/not-a-uuid", nil)
	r = r.WithContext(withRouteCtx(r, rctx))

	w := httptest.NewRecorder()
	a.MediaDelete(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestTimelineReplaceValidation(t *testing.T) {
	a, _ := brokenAdmin(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing year", `[{"title":{"en":"Founded"},"description":{"en":"x"}}]`},
		{"missing title", `[{"year":"1994"}]`},
		{"not an array", `{"year":"1994"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/api/timeline", strings.NewReader(tt.body))
			a.TimelineReplace(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestTimelineReplaceStoreFailure(t *testing.T) {
	a, _ := brokenAdmin(t)

	body := `[{"year":"1994","title":{"en":"Founded","ar":"التأسيس"}}]`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/timeline", strings.NewReader(body))
	a.TimelineReplace(w, r)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestMediaUploadRejectsOversize(t *testing.T) {
	a, _ := brokenAdmin(t)

	buf, contentType := multipartBody(t, "big.png", pngBytes(testMaxUpload+4096))
	r := httptest.NewRequest(http.MethodPost, "/api/media", buf)
	r.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	a.MediaUpload(w, r)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}

func TestMediaUploadRejectsType(t *testing.T) {
	a, dir := brokenAdmin(t)

	buf, contentType := multipartBody(t, "notes.txt", []byte("plain text, not media"))
	r := httptest.NewRequest(http.MethodPost, "/api/media", buf)
	r.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	a.MediaUpload(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	assertDirEmpty(t, dir)
}

func TestMediaUploadCleansUpOrphan(t *testing.T) {
	a, dir := brokenAdmin(t)

	// File write succeeds, metadata insert fails on the dead database.
	buf, contentType := multipartBody(t, "photo.png", pngBytes(2048))
	r := httptest.NewRequest(http.MethodPost, "/api/media", buf)
	r.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	a.MediaUpload(w, r)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	assertDirEmpty(t, dir)
}

// integrationDB opens the test database or skips the test, mirroring
// the store package's integration harness.
func integrationDB(t *testing.T) *sql.DB {
	t.Helper()

	envOr := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	dsn := "postgres://" + envOr("POSTGRES_USER", "kldcms") + ":" +
		envOr("POSTGRES_PASSWORD", "changeme") + "@" +
		envOr("POSTGRES_HOST", "localhost") + ":" +
		envOr("POSTGRES_PORT", "5432") + "/" +
		envOr("POSTGRES_DB", "kldcms") + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestMessageUpdateEmptyBodyKeepsReadState checks the merge semantics
// of the read toggle: a PUT body omitting isRead leaves the current
// value untouched in both directions.
func TestMessageUpdateEmptyBodyKeepsReadState(t *testing.T) {
	db := integrationDB(t)
	svc := content.NewService(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	files, err := storage.NewLocal(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	a := NewAdmin(db, svc, nil, files, testMaxUpload)
	msgs := store.NewMessageStore(db)

	email := "test-msg-merge@handler-test.local"
	t.Cleanup(func() { db.Exec("DELETE FROM messages WHERE email = $1", email) })

	created, err := msgs.Create(&models.Message{Name: "V", Email: email, Content: "hi"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	put := func(body string) *models.Message {
		t.Helper()
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", created.ID.String())
		r := httptest.NewRequest(http.MethodPut, "/api/messages/"+created.ID.String(), strings.NewReader(body))
		r = r.WithContext(withRouteCtx(r, rctx))

		w := httptest.NewRecorder()
		a.MessageUpdate(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("PUT %s: status = %d, body %s", body, w.Code, w.Body.String())
		}
		var m models.Message
		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		return &m
	}

	if m := put(`{}`); m.IsRead {
		t.Error("empty body marked an unread message read")
	}
	if m := put(`{"isRead":true}`); !m.IsRead {
		t.Error("explicit isRead=true was not applied")
	}
	if m := put(`{}`); !m.IsRead {
		t.Error("empty body cleared the read flag")
	}
	if m := put(`{"isRead":false}`); m.IsRead {
		t.Error("explicit isRead=false was not applied")
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("uploads dir not empty: %d file(s) left behind", len(entries))
	}
}
