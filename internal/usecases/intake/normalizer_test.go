package intake

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name              string
		orders            []shopifydomain.Order
		expectedLineIDs   []string
		expectedMalformed int
	}{
		{
			name:              "Lote vazio não produz linhas",
			orders:            []shopifydomain.Order{},
			expectedLineIDs:   []string{},
			expectedMalformed: 0,
		},
		{
			name: "Pedido sem itens não contribui com linhas",
			orders: []shopifydomain.Order{
				{ID: 1001},
			},
			expectedLineIDs:   []string{},
			expectedMalformed: 0,
		},
		{
			name: "Pedido com múltiplos itens vira sequência plana de linhas",
			orders: []shopifydomain.Order{
				{
					ID: 1001,
					LineItems: []shopifydomain.LineItem{
						{ID: 11, Title: "Lamp", Price: decimal.RequireFromString("20.00")},
						{ID: 12, Title: "Mug", Price: decimal.RequireFromString("9.90")},
					},
				},
			},
			expectedLineIDs:   []string{"1001-11", "1001-12"},
			expectedMalformed: 0,
		},
		{
			name: "Item sem id usa a posição para derivar o line_id",
			orders: []shopifydomain.Order{
				{
					ID: 1002,
					LineItems: []shopifydomain.LineItem{
						{Title: "Lamp", Price: decimal.RequireFromString("20.00")},
					},
				},
			},
			expectedLineIDs:   []string{"1002-0"},
			expectedMalformed: 0,
		},
		{
			name: "Linha malformada é excluída e contada, sem derrubar o lote",
			orders: []shopifydomain.Order{
				{
					ID: 1003,
					LineItems: []shopifydomain.LineItem{
						{ID: 31, Title: "Lamp", Price: decimal.RequireFromString("20.00")},
						{ID: 32, Title: "", Price: decimal.RequireFromString("5.00")},
						{ID: 33, Title: "Mug", Price: decimal.RequireFromString("-1.00")},
					},
				},
			},
			expectedLineIDs:   []string{"1003-31"},
			expectedMalformed: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, malformed := Normalize(tt.orders)

			lineIDs := make([]string, 0, len(lines))
			for _, line := range lines {
				lineIDs = append(lineIDs, line.LineID)
			}

			assert.Equal(t, tt.expectedLineIDs, lineIDs)
			assert.Equal(t, tt.expectedMalformed, malformed)
		})
	}
}

func TestNormalize_Determinism(t *testing.T) {
	orders := []shopifydomain.Order{
		{
			ID: 1001,
			Customer: shopifydomain.Customer{
				FirstName: "Maria",
				Email:     "maria@example.com",
			},
			LineItems: []shopifydomain.LineItem{
				{ID: 11, Title: "Lamp", Price: decimal.RequireFromString("20.00")},
				{Title: "Mug", Price: decimal.RequireFromString("9.90")},
			},
		},
	}

	first, _ := Normalize(orders)
	second, _ := Normalize(orders)

	// Buscas repetidas do mesmo pedido devem produzir os mesmos identificadores
	assert.Equal(t, first, second)
}

func TestNormalize_CustomerRef(t *testing.T) {
	tests := []struct {
		name     string
		customer shopifydomain.Customer
		expected string
	}{
		{
			name:     "Nome completo do cliente",
			customer: shopifydomain.Customer{FirstName: "Maria", LastName: "Silva"},
			expected: "Maria Silva",
		},
		{
			name:     "Apenas primeiro nome",
			customer: shopifydomain.Customer{FirstName: "Maria"},
			expected: "Maria",
		},
		{
			name:     "Sem nome usa o email",
			customer: shopifydomain.Customer{Email: "maria@example.com"},
			expected: "maria@example.com",
		},
		{
			name:     "Cliente totalmente ausente vira referência vazia",
			customer: shopifydomain.Customer{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := []shopifydomain.Order{
				{
					ID:       1001,
					Customer: tt.customer,
					LineItems: []shopifydomain.LineItem{
						{ID: 11, Title: "Lamp", Price: decimal.RequireFromString("20.00")},
					},
				},
			}

			lines, _ := Normalize(orders)

			assert.Len(t, lines, 1)
			assert.Equal(t, tt.expected, lines[0].CustomerRef)
		})
	}
}
