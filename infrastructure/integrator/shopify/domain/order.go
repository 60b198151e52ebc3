package shopifydomain

import "github.com/shopspring/decimal"

// Order é o payload bruto de um pedido retornado pela Admin API da Shopify.
// Campos opcionais podem vir ausentes; a normalização é responsável por
// tolerar dados parciais.
type Order struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Customer  Customer   `json:"customer,omitempty"`
	LineItems []LineItem `json:"line_items,omitempty"`
}

type Customer struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type LineItem struct {
	ID       int64           `json:"id,omitempty"`
	Title    string          `json:"title,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
	SKU      string          `json:"sku,omitempty"`
}
