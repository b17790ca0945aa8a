package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

func TestMessageRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewMessageRepo(db)

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(
			sqlmock.AnyArg(), // id
			"Bob",
			"bob@example.com",
			"Hi",
			"I'd like to talk",
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	m, err := repo.CreateMessage(context.Background(), content.Message{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Hi",
		Body:    "I'd like to talk",
		Read:    true, // 呼叫端無法預設已讀
	})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if m.Read {
		t.Error("new message must start unread")
	}
	if m.ID == "" {
		t.Error("expected generated id")
	}
}

func TestMessageRepo_MarkRead_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewMessageRepo(db)

	mock.ExpectExec("UPDATE messages").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkMessageRead(context.Background(), "missing"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSEORepo_Create_PageConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewSEORepo(db)

	mock.ExpectExec("INSERT INTO seo_settings").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.CreateSEOSetting(context.Background(), content.SEOSetting{
		Page:  "home",
		Title: "Home",
	})
	if !errors.Is(err, content.ErrSlugTaken) {
		t.Errorf("expected ErrSlugTaken, got %v", err)
	}
}
