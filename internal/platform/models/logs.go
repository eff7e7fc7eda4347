package models

// OrderLog is the append-only record of a successfully processed order.
type OrderLog struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Payload   string `json:"payload"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	IP        string `json:"ip,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// WebhookLog is the append-only record of a failed processing attempt.
// Status is always "failure"; Reason carries the error class, Message the detail.
type WebhookLog struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
