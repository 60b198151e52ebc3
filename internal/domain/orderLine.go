package domain

import "github.com/shopspring/decimal"

// OrderLine é uma unidade vendável extraída de um pedido não atendido da loja.
// O LineID é derivado do pedido de origem e permanece estável entre buscas
// repetidas do mesmo pedido.
type OrderLine struct {
	LineID      string          `json:"line_id"`
	CustomerRef string          `json:"customer_ref,omitempty"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
