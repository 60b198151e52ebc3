package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerStatus string

const (
	LedgerStatusProcessed LedgerStatus = "processed"
	LedgerStatusRefunded  LedgerStatus = "refunded"
)

// ErrLedgerRecordNotFound é retornado quando um line_id não existe no ledger
var ErrLedgerRecordNotFound = errors.New("registro não encontrado no ledger")

// LedgerRecord é o registro persistido de uma OrderLine aceita.
// Pertence exclusivamente ao LedgerRepository; nenhum outro componente o altera.
type LedgerRecord struct {
	LineID       string          `json:"line_id"`
	CustomerRef  string          `json:"customer_ref,omitempty"`
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SupplierCost decimal.Decimal `json:"supplier_cost"`
	Profit       decimal.Decimal `json:"profit"`
	Status       LedgerStatus    `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LedgerFilters restringe a listagem do ledger para auditoria
type LedgerFilters struct {
	Status    *LedgerStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// LedgerSummary agrega os totais do ledger para auditoria do operador
type LedgerSummary struct {
	TotalRecords  int             `json:"total_records"`
	RefundedCount int             `json:"refunded_count"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}
