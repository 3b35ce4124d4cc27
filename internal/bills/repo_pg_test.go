package bills

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertWritesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := testRecord(t, `{"Vendor Name":"Acme","created_at":"2025-06-01T12:00:00Z"}`)

	payload, _ := json.Marshal(rec)
	mock.ExpectExec("INSERT INTO bills").
		WithArgs(payload).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoInsertWrapsStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("INSERT INTO bills").
		WillReturnError(errors.New("connection refused"))

	err = repo.Insert(context.Background(), testRecord(t, `{"Vendor Name":"Acme"}`))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestPGRepoListAllDecodesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow([]byte(`{"Vendor Name":"Acme","created_at":"2025-06-01T12:00:00Z"}`)).
		AddRow([]byte(`{"Vendor Name":"Globex","created_at":"2025-06-02T12:00:00Z"}`))
	mock.ExpectQuery("SELECT payload FROM bills ORDER BY id").WillReturnRows(rows)

	recs, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Vendor Name"); v != "Acme" {
		t.Fatalf("expected first record Acme, got %v", v)
	}
	if v, _ := recs[1].Get("Vendor Name"); v != "Globex" {
		t.Fatalf("expected second record Globex, got %v", v)
	}
}

func TestPGRepoListAllWrapsStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT payload FROM bills").
		WillReturnError(errors.New("connection refused"))

	if _, err := repo.ListAll(context.Background()); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
