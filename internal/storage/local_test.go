// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	ctx := context.Background()
	url, err := l.Save(ctx, "1700000000-abc123.jpg", "image/jpeg", strings.NewReader("fake image bytes"), 16)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/1700000000-abc123.jpg" {
		t.Errorf("url: got %q, want %q", url, "/uploads/1700000000-abc123.jpg")
	}

	data, err := os.ReadFile(filepath.Join(dir, "1700000000-abc123.jpg"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("file content: got %q", data)
	}

	if err := l.Delete(ctx, url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "1700000000-abc123.jpg")); !os.IsNotExist(err) {
		t.Error("expected file removed")
	}
}

func TestLocalDeleteMissingFile(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	// A record whose file is already gone must not error.
	if err := l.Delete(context.Background(), "/uploads/never-existed.jpg"); err != nil {
		t.Errorf("Delete missing file: %v", err)
	}
}

func TestLocalSaveStripsPath(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := l.Save(context.Background(), "../../etc/evil.jpg", "image/jpeg", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/evil.jpg" {
		t.Errorf("url: got %q, want path-stripped name", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "evil.jpg")); err != nil {
		t.Errorf("expected file inside upload dir: %v", err)
	}
}

func TestNewLocalCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocal(dir, "/uploads"); err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}
}
