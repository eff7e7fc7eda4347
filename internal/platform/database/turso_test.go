package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/config"
)

func TestNew_LocalSQLiteFile(t *testing.T) {
	cfg := config.DatabaseConfig{
		URL:            "file:" + filepath.Join(t.TempDir(), "test.db"),
		MaxConnections: 2,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to open local sqlite db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestNew_TursoURLRejected(t *testing.T) {
	cfg := config.DatabaseConfig{URL: "libsql://orders-db.turso.io"}

	_, err := New(cfg)
	if err == nil {
		t.Fatal("Expected error for libsql URL, got nil")
	}
	if !strings.Contains(err.Error(), "libsql driver not bundled") {
		t.Errorf("Expected a driver explanation, got: %v", err)
	}
}
