package shopify

import (
	"context"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/lumenaura/order-manager-api/internal/config"
)

type ShopifyIntegrator interface {
	GetUnfulfilledOrders(ctx context.Context) ([]shopifydomain.Order, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

// GetUnfulfilledOrders retorna os pedidos abertos ainda não atendidos da loja
func (s *ShopifyService) GetUnfulfilledOrders(ctx context.Context) ([]shopifydomain.Order, error) {
	params := shopifyclient.OrdersConsultationParams{
		Status:            "open",
		FulfillmentStatus: "unfulfilled",
	}

	orders, err := s.Client.GetOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	return orders, nil
}
