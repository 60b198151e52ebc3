package domain

import "github.com/shopspring/decimal"

// BatchMetrics agrega os resultados de uma execução do pipeline de intake.
// É um valor novo a cada execução, nunca um acumulador compartilhado.
type BatchMetrics struct {
	ProcessedCount int             `json:"processed_count"`
	HeldCount      int             `json:"held_count"`
	MalformedCount int             `json:"malformed_count"`
	PersistFails   int             `json:"persist_failures"`
	NotifyFails    int             `json:"notify_failures"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

func NewBatchMetrics() *BatchMetrics {
	return &BatchMetrics{
		TotalSales:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}
}
