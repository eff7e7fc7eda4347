package repositories

import (
	"database/sql"
	"time"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/models"
	"github.com/google/uuid"
)

type WebhookLogRepository struct {
	db *sql.DB
}

func NewWebhookLogRepository(db *sql.DB) *WebhookLogRepository {
	return &WebhookLogRepository{db: db}
}

// Create writes one failure row. Callers treat this as best-effort: a failed
// log write has nowhere left to go.
func (r *WebhookLogRepository) Create(entry *models.WebhookLog) error {
	entry.ID = "wlog_" + uuid.New().String()
	if entry.Status == "" {
		entry.Status = "failure"
	}
	entry.Timestamp = time.Now().Unix()

	query := `
		INSERT INTO webhook_logs (id, status, reason, message, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		entry.ID, entry.Status, entry.Reason, entry.Message, entry.Timestamp,
	)
	return err
}
