package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/database/postgres"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository"
	"github.com/vhgravatas/pos-analytics-api/internal/api"
	"github.com/vhgravatas/pos-analytics-api/internal/config"
	"github.com/vhgravatas/pos-analytics-api/internal/scheduler"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/currency"
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

	saleRepo := repository.NewSaleRepository(pgConn)
	saleItemRepo := repository.NewSaleItemRepository(pgConn)
	vendorRepo := repository.NewVendorRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	cashRepo := repository.NewCashMovementRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	brlFormatter := currency.NewBRLFormatter()

	reportingService := reporting.NewService(
		cfg,
		saleRepo,
		saleItemRepo,
		vendorRepo,
		productRepo,
		cashRepo,
		brlFormatter,
	)

	// Inicializa o agendador de snapshots diários do relatório gerencial
	reportSnapshotSyncService := scheduler.NewReportSnapshotSyncService(
		reportingService,
		snapshotRepo,
		nil, // Sem renderizador acoplado; o snapshot persistido já atende a consulta
		cfg,
	)

	if err := reportSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatório")
	} else {
		logrus.Info("Agendador de snapshots de relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		snapshotRepo,
		reportSnapshotSyncService,
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
