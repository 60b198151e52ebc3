package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
)

type OrdersConsultationParams struct {
	Status            string
	FulfillmentStatus string
}

type ordersConsultationResponse struct {
	Orders []shopifydomain.Order `json:"orders"`
}

// GetOrders busca os pedidos da loja na Admin API da Shopify.
// A chamada é limitada pelo timeout de fetch configurado.
func (c *ShopifyClient) GetOrders(ctx context.Context, params OrdersConsultationParams) ([]shopifydomain.Order, error) {
	timeout := time.Duration(c.config.IntakeSync.FetchTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Shopify.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/admin/api", c.config.Shopify.APIVersion, "/orders.json")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.FulfillmentStatus != "" {
		query.Set("fulfillment_status", params.FulfillmentStatus)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.config.Shopify.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response ordersConsultationResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Orders, nil
}
