package ledgering

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenaura/order-manager-api/infrastructure/repository/mocks"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

func TestService_MarkRefunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedgerRepo := mocks.NewMockLedgerRepository(ctrl)
	service := NewService(mockLedgerRepo)

	t.Run("Registro existente transiciona para refunded mantendo os valores", func(t *testing.T) {
		refunded := &domain.LedgerRecord{
			LineID:      "1001-1",
			ProductName: "Lamp",
			UnitPrice:   decimal.RequireFromString("20.00"),
			Profit:      decimal.RequireFromString("12.00"),
			Status:      domain.LedgerStatusRefunded,
			CreatedAt:   time.Now(),
		}

		mockLedgerRepo.EXPECT().MarkRefunded("1001-1").Return(nil)
		mockLedgerRepo.EXPECT().GetByLineID("1001-1").Return(refunded, nil)

		record, err := service.MarkRefunded("1001-1")

		require.NoError(t, err)
		assert.Equal(t, domain.LedgerStatusRefunded, record.Status)
		assert.Equal(t, "20.00", record.UnitPrice.StringFixed(2))
		assert.Equal(t, "12.00", record.Profit.StringFixed(2))
	})

	t.Run("Line_id desconhecido devolve ErrLedgerRecordNotFound", func(t *testing.T) {
		mockLedgerRepo.EXPECT().MarkRefunded("desconhecido").Return(domain.ErrLedgerRecordNotFound)

		record, err := service.MarkRefunded("desconhecido")

		assert.ErrorIs(t, err, domain.ErrLedgerRecordNotFound)
		assert.Nil(t, record)
	})
}

func TestService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedgerRepo := mocks.NewMockLedgerRepository(ctrl)
	service := NewService(mockLedgerRepo)

	t.Run("Resumo agrega os totais do ledger", func(t *testing.T) {
		mockLedgerRepo.EXPECT().GetSummary().Return(&domain.LedgerSummary{
			TotalRecords:  2,
			RefundedCount: 1,
			TotalSales:    decimal.RequireFromString("35.00"),
			TotalProfit:   decimal.RequireFromString("21.00"),
		}, nil)

		summary, err := service.GetSummary()

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalRecords)
		assert.Equal(t, 1, summary.RefundedCount)
		assert.Equal(t, "35.00", summary.TotalSales.StringFixed(2))
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		mockLedgerRepo.EXPECT().GetSummary().Return(nil, errors.New("banco indisponível"))

		summary, err := service.GetSummary()

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}
