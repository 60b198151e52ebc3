package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lumenaura/order-manager-api/infrastructure/database/postgres"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/telegram"
	"github.com/lumenaura/order-manager-api/infrastructure/integrator/telegram/telegramclient"
	"github.com/lumenaura/order-manager-api/infrastructure/repository"
	"github.com/lumenaura/order-manager-api/internal/api"
	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/scheduler"
	"github.com/lumenaura/order-manager-api/internal/usecases/authenticating"
	"github.com/lumenaura/order-manager-api/internal/usecases/intake"
	"github.com/lumenaura/order-manager-api/internal/usecases/ledgering"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	logrus.WithFields(logrus.Fields{
		"cost_ratio":     cfg.Margin.CostRatio,
		"min_profit_abs": cfg.Margin.MinProfitAbs,
		"min_margin_pct": cfg.Margin.MinMarginPct,
	}).Info("Modelo de custo e limites de aceitação carregados")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	ledgerRepo := repository.NewLedgerRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	telegramClient := telegramclient.NewClient(cfg)
	notifier := telegram.New(cfg, telegramClient)

	intakePipeline := intake.NewService(cfg, shopifyIntegrator, notifier, ledgerRepo)
	ledgerService := ledgering.NewService(ledgerRepo)

	// Inicializa o agendador de execução recorrente do intake
	intakeSyncService := scheduler.NewIntakeSyncService(intakePipeline, cfg)

	if err := intakeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do intake de pedidos")
	} else {
		logrus.Info("Agendador do intake de pedidos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ledgerService,
		authenticator,
		intakeSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
