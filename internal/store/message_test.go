// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"kldcms/internal/models"
)

func TestMessageStoreCreateStartsUnread(t *testing.T) {
	db := testDB(t)
	s := NewMessageStore(db)

	email := "test-msg-create@store-test.local"
	t.Cleanup(func() { cleanMessages(t, db, email) })

	created, err := s.Create(&models.Message{
		Name:    "Visitor",
		Email:   email,
		Content: "Hello from the contact form",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.IsRead {
		t.Error("new message must start unread")
	}
	if created.Phone != nil || created.Subject != nil {
		t.Error("expected nil optional fields")
	}
}

func TestMessageStoreSetRead(t *testing.T) {
	db := testDB(t)
	s := NewMessageStore(db)

	email := "test-msg-read@store-test.local"
	t.Cleanup(func() { cleanMessages(t, db, email) })

	created, err := s.Create(&models.Message{Name: "V", Email: email, Content: "hi"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	unreadBefore, err := s.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}

	read, err := s.SetRead(created.ID, true)
	if err != nil {
		t.Fatalf("SetRead: %v", err)
	}
	if !read.IsRead {
		t.Error("expected message marked read")
	}

	unreadAfter, err := s.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if unreadBefore-unreadAfter != 1 {
		t.Errorf("unread count delta: got %d, want 1", unreadBefore-unreadAfter)
	}
}

func TestMessageStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewMessageStore(db)

	email := "test-msg-delete@store-test.local"

	created, err := s.Create(&models.Message{Name: "V", Email: email, Content: "bye"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := s.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected row removed")
	}

	found, _ := s.FindByID(created.ID)
	if found != nil {
		t.Error("expected nil after delete")
	}
}
