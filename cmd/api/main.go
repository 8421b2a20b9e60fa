package main

import (
	"context"

	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/api"
	"github.com/medgm/analytics-api/internal/api/handler"
	"github.com/medgm/analytics-api/internal/config"
	"github.com/medgm/analytics-api/internal/scheduler"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	"github.com/medgm/analytics-api/internal/usecases/goals"
	"github.com/medgm/analytics-api/internal/usecases/selling"
	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Usando nível de log 'info'")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewFinancialRecordRepository(pgConn)
	balanceRepo := repository.NewPriorBalanceRepository(pgConn)
	metricRepo := repository.NewFunnelMetricRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	companyGoalRepo := repository.NewCompanyGoalRepository(pgConn)
	personRepo := repository.NewPersonRepository(pgConn)

	clock := utils.SystemClock{}
	classifier := classifying.NewClassifier()

	statementService := statements.NewService(recordRepo, balanceRepo, classifier, clock)
	funnelService := funnel.NewService(metricRepo, saleRepo)

	goalSettings := goals.Settings{
		DefaultAnnualRevenue: decimal.NewFromInt(cfg.CompanyGoals.DefaultAnnualRevenue),
		DefaultAnnualCash:    decimal.NewFromInt(cfg.CompanyGoals.DefaultAnnualCash),
		DefaultHorizonMonths: cfg.Projection.DefaultHorizonMonths,
		MaxHorizonMonths:     cfg.Projection.MaxHorizonMonths,
	}
	goalService := goals.NewService(goalRepo, companyGoalRepo, personRepo, funnelService, statementService, clock, goalSettings)
	projectionService := goals.NewProjectionService(statementService, saleRepo, clock, goalSettings)

	saleService := selling.NewService(saleRepo, recordRepo)

	balanceSnapshotSyncService := scheduler.NewBalanceSnapshotSyncService(statementService, clock, cfg)
	if err := balanceSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento de saldos")
	} else {
		logrus.Info("Agendador de fechamento de saldos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Statements:  statementService,
		Funnel:      funnelService,
		Goals:       goalService,
		Projections: projectionService,
		Sales:       saleService,
		CronJobs: handler.CronJobServices{
			BalanceSnapshotSyncService: balanceSnapshotSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

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
