package repositories

import (
	"database/sql"
	"time"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/models"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	user.ID = "user_" + uuid.New().String()
	user.CreatedAt = time.Now().Unix()

	query := `
		INSERT INTO users (
			id, name, phone, pincode, product_name, product_sku,
			ip, state, city, address1, address2, country,
			order_id, product_id, product_url, product_price, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		user.ID, user.Name, user.Phone, user.Pincode, user.ProductName, user.ProductSKU,
		user.IP, user.State, user.City, user.Address1, user.Address2, user.Country,
		user.OrderID, user.ProductID, user.ProductURL, user.ProductPrice, user.CreatedAt,
	)
	return err
}

// CountByPhone returns how many prior orders were captured with this exact
// phone number. An empty phone still counts empty-phone rows; the handler
// owns the duplicate threshold.
func (r *UserRepository) CountByPhone(phone string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE phone = ?`, phone).Scan(&count)
	return count, err
}

func (r *UserRepository) CountByIP(ip string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE ip = ?`, ip).Scan(&count)
	return count, err
}
