package intake

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

func TestEvaluate(t *testing.T) {
	defaultRules := config.Margin{
		CostRatio:    0.40,
		MinProfitAbs: 2.0,
		MinMarginPct: 20.0,
	}

	tests := []struct {
		name                 string
		unitPrice            string
		rules                config.Margin
		expectedSupplierCost string
		expectedProfit       string
		expectedProfitPct    string
		expectedDecision     domain.Decision
	}{
		{
			name:                 "Margem confortável resulta em ACCEPT",
			unitPrice:            "20.00",
			rules:                defaultRules,
			expectedSupplierCost: "8.00",
			expectedProfit:       "12.00",
			expectedProfitPct:    "60.0",
			expectedDecision:     domain.DecisionAccept,
		},
		{
			name:                 "Lucro abaixo do mínimo absoluto resulta em HOLD",
			unitPrice:            "2.50",
			rules:                defaultRules,
			expectedSupplierCost: "1.00",
			expectedProfit:       "1.50",
			expectedProfitPct:    "60.0",
			expectedDecision:     domain.DecisionHold,
		},
		{
			name:                 "Preço zero resulta em HOLD sem divisão por zero",
			unitPrice:            "0.00",
			rules:                defaultRules,
			expectedSupplierCost: "0.00",
			expectedProfit:       "0.00",
			expectedProfitPct:    "0.0",
			expectedDecision:     domain.DecisionHold,
		},
		{
			name:      "Limites são inclusivos: lucro e margem exatamente no limite resultam em ACCEPT",
			unitPrice: "20.00",
			rules: config.Margin{
				CostRatio:    0.40,
				MinProfitAbs: 12.0,
				MinMarginPct: 60.0,
			},
			expectedSupplierCost: "8.00",
			expectedProfit:       "12.00",
			expectedProfitPct:    "60.0",
			expectedDecision:     domain.DecisionAccept,
		},
		{
			name:      "Margem exatamente abaixo do limite resulta em HOLD",
			unitPrice: "20.00",
			rules: config.Margin{
				CostRatio:    0.40,
				MinProfitAbs: 2.0,
				MinMarginPct: 60.1,
			},
			expectedSupplierCost: "8.00",
			expectedProfit:       "12.00",
			expectedProfitPct:    "60.0",
			expectedDecision:     domain.DecisionHold,
		},
		{
			name:      "Custo zero do fornecedor dá margem de cem por cento",
			unitPrice: "10.00",
			rules: config.Margin{
				CostRatio:    0,
				MinProfitAbs: 2.0,
				MinMarginPct: 20.0,
			},
			expectedSupplierCost: "0.00",
			expectedProfit:       "10.00",
			expectedProfitPct:    "100.0",
			expectedDecision:     domain.DecisionAccept,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.OrderLine{
				LineID:      "1001-1",
				ProductName: "Lamp",
				UnitPrice:   decimal.RequireFromString(tt.unitPrice),
			}

			assessment := Evaluate(line, tt.rules)

			assert.Equal(t, tt.expectedSupplierCost, assessment.SupplierCost.StringFixed(2))
			assert.Equal(t, tt.expectedProfit, assessment.Profit.StringFixed(2))
			assert.Equal(t, tt.expectedProfitPct, assessment.ProfitPct.StringFixed(1))
			assert.Equal(t, tt.expectedDecision, assessment.Decision)
		})
	}
}

func TestEvaluate_PureAndReproducible(t *testing.T) {
	rules := config.Margin{CostRatio: 0.40, MinProfitAbs: 2.0, MinMarginPct: 20.0}
	line := domain.OrderLine{LineID: "1001-1", ProductName: "Lamp", UnitPrice: decimal.RequireFromString("20.00")}

	first := Evaluate(line, rules)
	second := Evaluate(line, rules)

	// Decisão é função pura do preço e do modelo de custo
	assert.Equal(t, first, second)
}
