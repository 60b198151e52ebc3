package intake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/telegram"
	"github.com/lumenaura/order-manager-api/infrastructure/repository"
	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/domain"
	"github.com/lumenaura/order-manager-api/pkg/utils"
)

// IntakePipeline é o orquestrador do lote: busca pedidos não atendidos,
// normaliza, avalia margem, persiste os aceitos e notifica os operadores
type IntakePipeline interface {
	RunOnce(ctx context.Context) (*domain.BatchMetrics, error)
	LastRunStartedAt() time.Time
	LastRunCompletedAt() time.Time
}

type Service struct {
	cfg            *config.Config
	shopifyService shopify.ShopifyIntegrator
	notifier       telegram.TelegramNotifier
	ledgerRepo     repository.LedgerRepository

	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewService recebe os colaboradores já construídos; o orquestrador nunca
// instancia clientes externos diretamente
func NewService(
	cfg *config.Config,
	shopifyService shopify.ShopifyIntegrator,
	notifier telegram.TelegramNotifier,
	ledgerRepo repository.LedgerRepository,
) *Service {
	return &Service{
		cfg:            cfg,
		shopifyService: shopifyService,
		notifier:       notifier,
		ledgerRepo:     ledgerRepo,
	}
}

// RunOnce executa um lote completo do pipeline e retorna as métricas
// agregadas. Apenas a falha na busca de pedidos aborta o lote; falhas de
// persistência e notificação por linha são contadas e o lote continua.
//
// Duas execuções concorrentes sobre o mesmo ledger são proibidas: a segunda
// invocação é rejeitada com ErrRunAlreadyInProgress.
func (s *Service) RunOnce(ctx context.Context) (*domain.BatchMetrics, error) {
	if err := s.acquireRun(); err != nil {
		return nil, err
	}
	defer s.releaseRun()

	batchID, _ := utils.GenerateID()
	logger := logrus.WithField("batch_id", batchID)

	logger.Info("Iniciando lote de intake de pedidos")

	orders, err := s.shopifyService.GetUnfulfilledOrders(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos não atendidos da Shopify")
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if err := s.notifier.NotifyBatchStarted(len(orders)); err != nil {
		// Notificação é melhor esforço, nunca bloqueia o lote
		logger.WithError(err).Warn("Erro ao notificar início do lote")
	}

	metrics := domain.NewBatchMetrics()

	lines, malformedCount := Normalize(orders)
	metrics.MalformedCount = malformedCount
	if malformedCount > 0 {
		logger.WithFields(logrus.Fields{
			"malformed_lines": malformedCount,
		}).Warn("Linhas malformadas excluídas do lote")
	}

	for _, line := range lines {
		s.processLine(line, metrics)
	}

	logger.WithFields(logrus.Fields{
		"processed_count":  metrics.ProcessedCount,
		"held_count":       metrics.HeldCount,
		"malformed_count":  metrics.MalformedCount,
		"persist_failures": metrics.PersistFails,
		"notify_failures":  metrics.NotifyFails,
		"total_sales":      metrics.TotalSales.StringFixed(2),
		"total_profit":     metrics.TotalProfit.StringFixed(2),
	}).Info("Lote de intake concluído")

	return metrics, nil
}

// processLine avalia e, se aceita, persiste e notifica uma única linha.
// Falhas aqui nunca abortam o restante do lote.
func (s *Service) processLine(line domain.OrderLine, metrics *domain.BatchMetrics) {
	assessment := Evaluate(line, s.cfg.Margin)

	if assessment.Decision == domain.DecisionHold {
		metrics.HeldCount++
		logrus.WithFields(logrus.Fields{
			"line_id":    line.LineID,
			"unit_price": line.UnitPrice.StringFixed(2),
			"profit":     assessment.Profit.StringFixed(2),
		}).Debug("Linha retida por margem insuficiente")
		return
	}

	record := &domain.LedgerRecord{
		LineID:       line.LineID,
		CustomerRef:  line.CustomerRef,
		ProductName:  line.ProductName,
		UnitPrice:    line.UnitPrice,
		SupplierCost: assessment.SupplierCost,
		Profit:       assessment.Profit,
		Status:       domain.LedgerStatusProcessed,
	}

	if err := s.ledgerRepo.Upsert(record); err != nil {
		// A aceitação não é contada como processada quando a persistência
		// falha; o contador permite a reconciliação pelo operador
		metrics.PersistFails++
		logrus.WithError(err).WithField("line_id", line.LineID).Error("Erro ao persistir linha aceita no ledger")
		return
	}

	if err := s.notifier.NotifyOrderAccepted(line, assessment); err != nil {
		metrics.NotifyFails++
		logrus.WithError(err).WithField("line_id", line.LineID).Warn("Erro ao notificar pedido aceito")
	}

	metrics.ProcessedCount++
	metrics.TotalSales = metrics.TotalSales.Add(line.UnitPrice)
	metrics.TotalProfit = metrics.TotalProfit.Add(assessment.Profit)
}

func (s *Service) acquireRun() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		logrus.Warn("Execução do pipeline de intake já está em andamento")
		return ErrRunAlreadyInProgress
	}

	s.running = true
	s.lastRunStartedAt = time.Now()
	return nil
}

func (s *Service) releaseRun() {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.running = false
	s.lastRunCompletedAt = time.Now()
}

func (s *Service) LastRunStartedAt() time.Time {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastRunStartedAt
}

func (s *Service) LastRunCompletedAt() time.Time {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastRunCompletedAt
}
