// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries; none are expected

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !errors.Is(err, ErrNilDB) {
		t.Errorf("expected ErrNilDB, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("unexpected glob error: %v", err)
	}

	want := []string{"00001_create_users.sql", "00002_create_bookings.sql"}
	if len(files) != len(want) {
		t.Fatalf("expected %d migrations, got %v", len(want), files)
	}
	for i, name := range want {
		if files[i] != name {
			t.Errorf("expected %s at position %d, got %s", name, i, files[i])
		}
		body, err := fs.ReadFile(embedMigrations, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
			t.Errorf("%s must declare goose Up and Down sections", name)
		}
	}
}
