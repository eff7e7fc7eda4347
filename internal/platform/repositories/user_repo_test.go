package repositories

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}

	query := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		pincode TEXT NOT NULL,
		product_name TEXT NOT NULL,
		product_sku TEXT NOT NULL,
		ip TEXT,
		state TEXT,
		city TEXT,
		address1 TEXT,
		address2 TEXT,
		country TEXT,
		order_id TEXT,
		product_id TEXT,
		product_url TEXT,
		product_price REAL,
		created_at INTEGER NOT NULL
	);
	`
	_, err = db.Exec(query)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	return db
}

func testUser(phone, ip string) *models.User {
	return &models.User{
		Name:        "Ravi Kumar",
		Phone:       phone,
		Pincode:     "110001",
		ProductName: "Herbal Mix",
		ProductSKU:  "ABC123",
		IP:          ip,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewUserRepository(db)

	user := testUser("9876543210", "103.25.1.9")
	user.ProductPrice = 499.0
	user.OrderID = "5678901234"

	if err := repo.Create(user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == "" || user.ID[:5] != "user_" {
		t.Errorf("Expected generated user_ id, got %q", user.ID)
	}
	if user.CreatedAt == 0 {
		t.Error("Expected CreatedAt to be set")
	}

	var price float64
	var orderID string
	err := db.QueryRow(`SELECT product_price, order_id FROM users WHERE id = ?`, user.ID).Scan(&price, &orderID)
	if err != nil {
		t.Fatalf("Failed to read back user: %v", err)
	}
	if price != 499.0 {
		t.Errorf("Expected price 499.0, got %v", price)
	}
	if orderID != "5678901234" {
		t.Errorf("Expected order_id 5678901234, got %s", orderID)
	}
}

func TestUserRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewUserRepository(db)

	for i := 0; i < 2; i++ {
		if err := repo.Create(testUser("9999999999", "1.2.3.4")); err != nil {
			t.Fatalf("Failed to seed user: %v", err)
		}
	}
	if err := repo.Create(testUser("8888888888", "5.6.7.8")); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	tests := []struct {
		name  string
		query func() (int, error)
		want  int
	}{
		{"Two phone matches", func() (int, error) { return repo.CountByPhone("9999999999") }, 2},
		{"One phone match", func() (int, error) { return repo.CountByPhone("8888888888") }, 1},
		{"No phone match", func() (int, error) { return repo.CountByPhone("0000000000") }, 0},
		{"Two ip matches", func() (int, error) { return repo.CountByIP("1.2.3.4") }, 2},
		{"No ip match", func() (int, error) { return repo.CountByIP("9.9.9.9") }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query()
			if err != nil {
				t.Fatalf("Count failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
