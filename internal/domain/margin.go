package domain

import "github.com/shopspring/decimal"

// Decision é o resultado da avaliação de margem de uma linha de pedido
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionHold   Decision = "HOLD"
)

// MarginAssessment é o resultado derivado da avaliação de uma OrderLine.
// Não é persistido de forma independente.
type MarginAssessment struct {
	SupplierCost decimal.Decimal `json:"supplier_cost"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitPct    decimal.Decimal `json:"profit_pct"`
	Decision     Decision        `json:"decision"`
}
