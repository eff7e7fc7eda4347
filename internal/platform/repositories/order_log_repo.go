package repositories

import (
	"database/sql"
	"time"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/models"
	"github.com/google/uuid"
)

type OrderLogRepository struct {
	db *sql.DB
}

func NewOrderLogRepository(db *sql.DB) *OrderLogRepository {
	return &OrderLogRepository{db: db}
}

func (r *OrderLogRepository) Create(entry *models.OrderLog) error {
	entry.ID = "order_" + uuid.New().String()
	entry.Timestamp = time.Now().Unix()

	query := `
		INSERT INTO order_logs (id, status, payload, name, phone, ip, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		entry.ID, entry.Status, entry.Payload, entry.Name, entry.Phone, entry.IP, entry.Timestamp,
	)
	return err
}
