package models

// User is one captured order/customer. Rows are written once per successful
// webhook and never updated or deleted.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Pincode      string  `json:"pincode"`
	ProductName  string  `json:"product_name"`
	ProductSKU   string  `json:"product_sku"`
	IP           string  `json:"ip,omitempty"`
	State        string  `json:"state,omitempty"`
	City         string  `json:"city,omitempty"`
	Address1     string  `json:"address1,omitempty"`
	Address2     string  `json:"address2,omitempty"`
	Country      string  `json:"country,omitempty"`
	OrderID      string  `json:"order_id,omitempty"`
	ProductID    string  `json:"product_id,omitempty"`
	ProductURL   string  `json:"product_url,omitempty"`
	ProductPrice float64 `json:"product_price,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}
