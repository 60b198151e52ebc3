package intake

import (
	"github.com/shopspring/decimal"

	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Evaluate calcula custo do fornecedor, lucro e margem de uma OrderLine e a
// classifica como ACCEPT ou HOLD contra os limites configurados. Os limites
// são inclusivos: lucro e margem exatamente no limite são aceitos.
//
// Função pura: a decisão depende apenas do preço e do modelo de custo, sem
// estado oculto, e é segura para chamadas concorrentes.
func Evaluate(line domain.OrderLine, rules config.Margin) domain.MarginAssessment {
	costRatio := decimal.NewFromFloat(rules.CostRatio)
	minProfitAbs := decimal.NewFromFloat(rules.MinProfitAbs)
	minMarginPct := decimal.NewFromFloat(rules.MinMarginPct)

	supplierCost := line.UnitPrice.Mul(costRatio)
	profit := line.UnitPrice.Sub(supplierCost)

	// Preço zero não satisfaz nenhum limite de margem e dividiria por zero;
	// a linha vai para HOLD sem mascarar a condição
	if line.UnitPrice.IsZero() {
		return domain.MarginAssessment{
			SupplierCost: supplierCost,
			Profit:       profit,
			ProfitPct:    decimal.Zero,
			Decision:     domain.DecisionHold,
		}
	}

	profitPct := profit.Div(line.UnitPrice).Mul(oneHundred)

	decision := domain.DecisionHold
	if profit.GreaterThanOrEqual(minProfitAbs) && profitPct.GreaterThanOrEqual(minMarginPct) {
		decision = domain.DecisionAccept
	}

	return domain.MarginAssessment{
		SupplierCost: supplierCost,
		Profit:       profit,
		ProfitPct:    profitPct,
		Decision:     decision,
	}
}
