package main

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/source"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(log.Options{
		Level:      cfg.App.LogLevel,
		OutputFile: cfg.App.LogFile,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesSource, closeSource := newSalesSource(ctx, cfg)
	defer closeSource()

	engine, err := aggregating.NewEngine()
	if err != nil {
		log.L.Fatal(err)
	}

	dashboard := dashboarding.NewService(cfg.Dataset, salesSource, engine)

	if cfg.Dataset.LoadOnStartup {
		status, err := dashboard.Reload(ctx)
		if err != nil {
			log.L.WithError(err).Error("Erro ao carregar dataset na inicialização; nova tentativa no primeiro uso")
		} else {
			log.L.WithFields(log.Fields{
				"source":   status.Source,
				"records":  status.Records,
				"rejected": status.RejectedCount,
			}).Info("Dataset carregado na inicialização")
		}
	}

	authenticator := authenticating.NewService(cfg.Auth)

	datasetRefreshService := scheduler.NewDatasetRefreshService(dashboard, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, dashboard, authenticator, datasetRefreshService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// newSalesSource escolhe a origem do dataset conforme SALES_SOURCE
func newSalesSource(ctx context.Context, cfg *config.Config) (dashboarding.SalesSource, func()) {
	if cfg.Dataset.Source != domain.SourcePostgres {
		log.L.WithField("dataset_file", cfg.Dataset.SalesFile).Info("Usando arquivo como origem do dataset")
		return source.NewFileSource(cfg.Dataset), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	salesSource := source.NewPostgresSource(
		repository.NewSaleRecordRepository(conn),
		repository.NewPostalCodeRepository(conn),
	)

	return salesSource, func() { conn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
