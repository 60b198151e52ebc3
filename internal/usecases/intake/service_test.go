package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shopifydomain "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/domain"
	shopifymocks "github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/mocks"
	telegrammocks "github.com/lumenaura/order-manager-api/infrastructure/integrator/telegram/mocks"
	"github.com/lumenaura/order-manager-api/infrastructure/repository/mocks"
	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Margin: config.Margin{
			CostRatio:    0.40,
			MinProfitAbs: 2.0,
			MinMarginPct: 20.0,
		},
	}
}

func lampOrder() shopifydomain.Order {
	return shopifydomain.Order{
		ID: 1001,
		Customer: shopifydomain.Customer{
			FirstName: "Maria",
			Email:     "maria@example.com",
		},
		LineItems: []shopifydomain.LineItem{
			{ID: 1, Title: "Lamp", Price: decimal.RequireFromString("20.00")},
		},
	}
}

func TestService_RunOnce(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository)
		validate func(t *testing.T, metrics *domain.BatchMetrics, err error)
	}{
		{
			name: "Linha com margem suficiente é persistida, notificada e contada",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{lampOrder()}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(nil)

				ledgerRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(record *domain.LedgerRecord) error {
						assert.Equal(t, "1001-1", record.LineID)
						assert.Equal(t, "Maria", record.CustomerRef)
						assert.Equal(t, "Lamp", record.ProductName)
						assert.Equal(t, "20.00", record.UnitPrice.StringFixed(2))
						assert.Equal(t, "8.00", record.SupplierCost.StringFixed(2))
						assert.Equal(t, "12.00", record.Profit.StringFixed(2))
						assert.Equal(t, domain.LedgerStatusProcessed, record.Status)
						return nil
					})

				notifier.EXPECT().
					NotifyOrderAccepted(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, metrics.ProcessedCount)
				assert.Equal(t, 0, metrics.HeldCount)
				assert.Equal(t, "20.00", metrics.TotalSales.StringFixed(2))
				assert.Equal(t, "12.00", metrics.TotalProfit.StringFixed(2))
			},
		},
		{
			name: "Linha com lucro abaixo do mínimo é retida sem persistência nem notificação",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				order := lampOrder()
				order.LineItems[0].Price = decimal.RequireFromString("2.50")

				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{order}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(nil)
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, metrics.ProcessedCount)
				assert.Equal(t, 1, metrics.HeldCount)
				assert.Equal(t, "0.00", metrics.TotalSales.StringFixed(2))
				assert.Equal(t, "0.00", metrics.TotalProfit.StringFixed(2))
			},
		},
		{
			name: "Falha na busca de pedidos aborta o lote inteiro",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return(nil, errors.New("loja indisponível"))
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFetchFailed)
				assert.Nil(t, metrics)
			},
		},
		{
			name: "Linha malformada é contada sem impedir a linha válida",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				order := lampOrder()
				order.LineItems = append(order.LineItems, shopifydomain.LineItem{
					ID: 2, Title: "", Price: decimal.RequireFromString("5.00"),
				})

				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{order}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(nil)
				ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				notifier.EXPECT().NotifyOrderAccepted(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, metrics.ProcessedCount)
				assert.Equal(t, 1, metrics.MalformedCount)
			},
		},
		{
			name: "Falha de persistência em uma linha não aborta as demais",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				order := lampOrder()
				order.LineItems = append(order.LineItems, shopifydomain.LineItem{
					ID: 2, Title: "Mug", Price: decimal.RequireFromString("15.00"),
				})

				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{order}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(nil)

				gomock.InOrder(
					ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("disco cheio")),
					ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(nil),
				)

				notifier.EXPECT().NotifyOrderAccepted(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				// A linha com falha de persistência não entra nos totais
				assert.Equal(t, 1, metrics.ProcessedCount)
				assert.Equal(t, 1, metrics.PersistFails)
				assert.Equal(t, "15.00", metrics.TotalSales.StringFixed(2))
			},
		},
		{
			name: "Falha de notificação não reverte a persistência",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{lampOrder()}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(nil)
				ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				notifier.EXPECT().
					NotifyOrderAccepted(gomock.Any(), gomock.Any()).
					Return(errors.New("telegram indisponível"))
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, metrics.ProcessedCount)
				assert.Equal(t, 1, metrics.NotifyFails)
				assert.Equal(t, "20.00", metrics.TotalSales.StringFixed(2))
			},
		},
		{
			name: "Falha ao notificar início do lote não impede o processamento",
			setup: func(shopifyService *shopifymocks.MockShopifyIntegrator, notifier *telegrammocks.MockTelegramNotifier, ledgerRepo *mocks.MockLedgerRepository) {
				shopifyService.EXPECT().
					GetUnfulfilledOrders(gomock.Any()).
					Return([]shopifydomain.Order{lampOrder()}, nil)

				notifier.EXPECT().NotifyBatchStarted(1).Return(errors.New("telegram indisponível"))
				ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				notifier.EXPECT().NotifyOrderAccepted(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, metrics *domain.BatchMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, metrics.ProcessedCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			shopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)
			notifier := telegrammocks.NewMockTelegramNotifier(ctrl)
			ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

			service := NewService(newTestConfig(), shopifyService, notifier, ledgerRepo)

			tt.setup(shopifyService, notifier, ledgerRepo)

			metrics, err := service.RunOnce(context.Background())
			tt.validate(t, metrics, err)
		})
	}
}

func TestService_RunOnce_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		newTestConfig(),
		shopifymocks.NewMockShopifyIntegrator(ctrl),
		telegrammocks.NewMockTelegramNotifier(ctrl),
		mocks.NewMockLedgerRepository(ctrl),
	)

	// Simula uma execução em andamento
	service.running = true

	metrics, err := service.RunOnce(context.Background())

	assert.ErrorIs(t, err, ErrRunAlreadyInProgress)
	assert.Nil(t, metrics)
}

func TestService_RunOnce_MetricsAreFreshPerRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)
	notifier := telegrammocks.NewMockTelegramNotifier(ctrl)
	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

	service := NewService(newTestConfig(), shopifyService, notifier, ledgerRepo)

	shopifyService.EXPECT().GetUnfulfilledOrders(gomock.Any()).Return([]shopifydomain.Order{lampOrder()}, nil).Times(2)
	notifier.EXPECT().NotifyBatchStarted(1).Return(nil).Times(2)
	ledgerRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
	notifier.EXPECT().NotifyOrderAccepted(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	second, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	// Cada execução devolve um valor novo, sem vazamento entre lotes
	assert.Equal(t, 1, first.ProcessedCount)
	assert.Equal(t, 1, second.ProcessedCount)
	assert.Equal(t, "20.00", second.TotalSales.StringFixed(2))
}
