package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lumenaura/order-manager-api/internal/domain"
	"github.com/lumenaura/order-manager-api/internal/usecases/intake"
	intakemocks "github.com/lumenaura/order-manager-api/internal/usecases/intake/mocks"
)

func TestIntakeSyncService_runIntakeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPipeline := intakemocks.NewMockIntakePipeline(ctrl)

	service := &IntakeSyncService{
		config: IntakeSyncConfig{
			CronSchedule: "*/15 * * * *",
			SyncEnabled:  true,
		},
		pipeline: mockPipeline,
	}

	t.Run("Lote agendado executa o pipeline e registra os horários", func(t *testing.T) {
		metrics := domain.NewBatchMetrics()
		metrics.ProcessedCount = 3

		mockPipeline.EXPECT().
			RunOnce(gomock.Any()).
			Return(metrics, nil)

		service.runIntakeBatch(context.Background())

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
		assert.False(t, service.syncRunning)
	})

	t.Run("Pipeline ocupado não derruba o agendador", func(t *testing.T) {
		mockPipeline.EXPECT().
			RunOnce(gomock.Any()).
			Return(nil, intake.ErrRunAlreadyInProgress)

		service.runIntakeBatch(context.Background())

		assert.False(t, service.syncRunning)
	})

	t.Run("Falha na busca de pedidos é registrada sem propagar", func(t *testing.T) {
		mockPipeline.EXPECT().
			RunOnce(gomock.Any()).
			Return(nil, intake.ErrFetchFailed)

		service.runIntakeBatch(context.Background())

		assert.False(t, service.syncRunning)
	})

	t.Run("Lote é ignorado quando outro já está em execução", func(t *testing.T) {
		service.syncRunning = true

		// Nenhuma expectativa no pipeline: RunOnce não deve ser chamado
		service.runIntakeBatch(context.Background())

		service.syncRunning = false
	})
}

func TestIntakeSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPipeline := intakemocks.NewMockIntakePipeline(ctrl)
	mockPipeline.EXPECT().LastRunStartedAt().Return(time.Time{})
	mockPipeline.EXPECT().LastRunCompletedAt().Return(time.Time{})

	service := &IntakeSyncService{
		config: IntakeSyncConfig{
			CronSchedule: "*/15 * * * *",
			SyncEnabled:  true,
		},
		pipeline: mockPipeline,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/15 * * * *", status["sync_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_run_completed_at")
}
