package telegramclient

import (
	"net/http"
	"time"

	"github.com/lumenaura/order-manager-api/internal/config"
)

type Client interface {
	SendMessage(chatID string, text string) error
}

type TelegramClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		config: cfg,
	}
}
