package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_users_email").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func TestNewParseError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected error")
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user@example.com", "hashed").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	usr, err := storage.Users().Create(context.Background(), "user@example.com", "hashed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID != 1 || usr.Email != "user@example.com" || usr.PasswordHash != "hashed" {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if !usr.CreatedAt.Equal(now) || !usr.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not populated: %+v", usr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user@example.com", "hashed").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Users().Create(context.Background(), "user@example.com", "hashed")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryCreateError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user@example.com", "hashed").
		WillReturnError(errors.New("boom"))

	_, err := storage.Users().Create(context.Background(), "user@example.com", "hashed")
	if err == nil || errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected plain error, got %v", err)
	}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email").
		WithArgs("user@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(1), "user@example.com", "hashed", now, now))

	usr, err := storage.Users().GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID != 1 || usr.PasswordHash != "hashed" {
		t.Fatalf("unexpected user: %+v", usr)
	}
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Users().GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(7), "user@example.com", "hashed", now, now))

	usr, err := storage.Users().GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID != 7 || usr.Email != "user@example.com" {
		t.Fatalf("unexpected user: %+v", usr)
	}
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Users().GetByID(context.Background(), 404)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealthCheckFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStorageClose(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectClose()
	storage.Close()
}

func TestStorageLogger(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	if storage.Logger() == nil {
		t.Fatal("expected logger")
	}
}
