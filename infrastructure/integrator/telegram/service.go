package telegram

import (
	"fmt"

	"github.com/lumenaura/order-manager-api/infrastructure/integrator/telegram/telegramclient"
	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

// Channel identifica o destinatário humano das notificações
type Channel string

const (
	ChannelOwner Channel = "owner"
	ChannelOps   Channel = "ops"
)

// TelegramNotifier entrega eventos do pipeline aos operadores.
// A entrega é melhor esforço: falhas nunca bloqueiam o pipeline.
type TelegramNotifier interface {
	NotifyBatchStarted(orderCount int) error
	NotifyOrderAccepted(line domain.OrderLine, assessment domain.MarginAssessment) error
}

type TelegramService struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) TelegramNotifier {
	return &TelegramService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TelegramService) NotifyBatchStarted(orderCount int) error {
	text := fmt.Sprintf("🚀 Lumenaura: iniciando processamento de %d pedido(s) não atendido(s)", orderCount)
	return s.sendTo(ChannelOps, text)
}

func (s *TelegramService) NotifyOrderAccepted(line domain.OrderLine, assessment domain.MarginAssessment) error {
	text := fmt.Sprintf(
		"✅ Pedido aceito\nLinha: %s\nProduto: %s\nCliente: %s\nPreço: %s\nLucro: %s (%s%%)",
		line.LineID,
		line.ProductName,
		line.CustomerRef,
		line.UnitPrice.StringFixed(2),
		assessment.Profit.StringFixed(2),
		assessment.ProfitPct.StringFixed(1),
	)
	return s.sendTo(ChannelOwner, text)
}

func (s *TelegramService) sendTo(channel Channel, text string) error {
	chatID := s.cfg.Telegram.OwnerChatID
	if channel == ChannelOps {
		chatID = s.cfg.Telegram.OpsChatID
	}

	if chatID == "" {
		return fmt.Errorf("chat não configurado para o canal %s", channel)
	}

	return s.Client.SendMessage(chatID, text)
}
