package shopifyclient

import (
	"context"
	"net/http"
	"time"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
	"github.com/lumenaura/order-manager-api/internal/config"
)

type Client interface {
	GetOrders(ctx context.Context, params OrdersConsultationParams) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
