package orders

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes a JSON value that Shopify sends as either a string or a
// number (order ids, zips, prices, quantities) into its string form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

func (f FlexString) Float64() float64 {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0
	}
	return v
}

// Customer fields all arrive null from some checkout funnels; the "Phone"
// and "Name" note attributes carry the real values then (see Order.Phone).
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type ShippingAddress struct {
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name"`
	Phone        FlexString `json:"phone" validate:"required"`
	Zip          FlexString `json:"zip" validate:"required"`
	Address1     string     `json:"address1" validate:"required"`
	Address2     string     `json:"address2"`
	City         string     `json:"city"`
	Province     string     `json:"province"`
	Country      string     `json:"country"`
	CountryCode  string     `json:"country_code"`
	ProvinceCode string     `json:"province_code"`
}

type NoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type LineItem struct {
	SKU       string     `json:"sku" validate:"required"`
	Name      string     `json:"name"`
	Price     FlexString `json:"price"`
	Quantity  FlexString `json:"quantity"`
	ProductID FlexString `json:"product_id"`
}

// Order is the subset of a Shopify order webhook this service reads.
type Order struct {
	ID              FlexString      `json:"id" validate:"required"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	NoteAttributes  []NoteAttribute `json:"note_attributes"`
	LineItems       []LineItem      `json:"line_items" validate:"required,min=1,dive"`
}

// NoteAttribute returns the value of the named checkout attribute, or "" when
// the attribute is absent.
func (o *Order) NoteAttribute(name string) string {
	for _, attr := range o.NoteAttributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

// Phone prefers the customer record, falling back to the "Phone" note
// attribute some checkout funnels stash the number in.
func (o *Order) Phone() string {
	if o.Customer.Phone != "" {
		return o.Customer.Phone
	}
	return o.NoteAttribute("Phone")
}

func (o *Order) IP() string {
	return o.NoteAttribute("IP Address")
}

func (o *Order) Address() string {
	return o.NoteAttribute("Address")
}

func (o *Order) FullName() string {
	return o.NoteAttribute("Name")
}

func (o *Order) ProductURL() string {
	return o.NoteAttribute("full_url")
}
