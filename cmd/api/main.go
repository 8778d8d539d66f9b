package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/modashclient"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/api"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/scheduler"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/aggregating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/ratelimit"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	influencerRepo := repository.NewInfluencerRepository(pgConn)
	linkRepo := repository.NewPlatformLinkRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// O token bucket é compartilhado por todas as chamadas ao provedor externo,
	// inclusive as da varredura em massa
	limiter := ratelimit.New(
		cfg.AnalyticsSync.RateLimitTokens,
		cfg.AnalyticsSync.RateLimitInterval(),
	)

	modashClient := modashclient.NewClient(cfg)
	modashIntegrator := modash.New(cfg, modashClient, limiter)

	aggregator := aggregating.NewService(linkRepo, influencerRepo)

	syncService := syncing.NewService(cfg, modashIntegrator, snapshotRepo, linkRepo, aggregator)

	analyticsSyncService := scheduler.NewAnalyticsSyncService(syncService, cfg)

	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de analytics")
	} else {
		logrus.Info("Agendador de sincronização de analytics iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		syncService,
		influencerRepo,
		linkRepo,
		analyticsSyncService,
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
