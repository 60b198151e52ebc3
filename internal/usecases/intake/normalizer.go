package intake

import (
	"fmt"
	"strings"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

// Normalize converte payloads brutos da loja em uma sequência plana de
// OrderLines. Linhas malformadas (sem título ou com preço negativo) são
// excluídas e contadas, nunca um erro fatal: o pipeline tolera dados
// parciais da loja.
//
// Transformação pura, sem efeitos colaterais.
func Normalize(orders []shopifydomain.Order) ([]domain.OrderLine, int) {
	lines := make([]domain.OrderLine, 0)
	malformed := 0

	for _, order := range orders {
		for position, item := range order.LineItems {
			if item.Title == "" || item.Price.IsNegative() {
				malformed++
				continue
			}

			lines = append(lines, domain.OrderLine{
				LineID:      buildLineID(order, item, position),
				CustomerRef: customerRef(order.Customer),
				ProductName: item.Title,
				UnitPrice:   item.Price,
			})
		}
	}

	return lines, malformed
}

// buildLineID deriva um identificador estável a partir do id nativo do pedido
// e do item. Buscas repetidas do mesmo pedido não atendido produzem sempre o
// mesmo line_id.
func buildLineID(order shopifydomain.Order, item shopifydomain.LineItem, position int) string {
	if item.ID != 0 {
		return fmt.Sprintf("%d-%d", order.ID, item.ID)
	}
	return fmt.Sprintf("%d-%d", order.ID, position)
}

func customerRef(customer shopifydomain.Customer) string {
	name := strings.TrimSpace(strings.TrimSpace(customer.FirstName) + " " + strings.TrimSpace(customer.LastName))
	if name != "" {
		return name
	}
	return customer.Email
}
