package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/api"
	"github.com/vfg2006/exchange-analytics-api/internal/config"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/internal/scheduler"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ratehistory"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	officeRepo := repository.NewOfficeRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	eventStore := repository.NewEventStore(pgConn)
	rateHistoryRepo := repository.NewRateHistoryRepository(pgConn)
	officeRankingRepo := repository.NewOfficeRankingRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	aggregator := aggregating.NewService(eventStore)

	bulkTimeout := time.Duration(cfg.Aggregation.BulkQueryTimeoutSeconds) * time.Second
	statsService := dashboard.NewService(officeRepo, aggregator, bulkTimeout)

	trackingService := tracking.NewService(officeRepo, eventStore)
	rateHistoryService := ratehistory.NewService(officeRepo, rateHistoryRepo)
	rankingService := ranking.NewOfficeRankingService(officeRankingRepo)

	// O barramento recebe as notificações RateMutated que o serviço de gestão
	// de taxas entrega via endpoint depois do commit; o gravador de histórico
	// é o primeiro consumidor
	bus := events.NewBus()
	recorder := ratehistory.NewRecorder(rateHistoryRepo)
	recorder.Register(bus)

	officeRankingSyncService := scheduler.NewOfficeRankingService(
		officeRepo,
		officeRankingRepo,
		aggregator,
		cfg,
	)

	if err := officeRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de escritórios")
	} else {
		logrus.Info("Agendador do ranking de escritórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		statsService,
		trackingService,
		rateHistoryService,
		bus,
		rankingService,
		authenticator,
		officeRankingSyncService,
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
