package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-sales-api/infrastructure/repository"
	"github.com/vfg2006/inventory-sales-api/internal/api"
	"github.com/vfg2006/inventory-sales-api/internal/config"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/revenue"
)

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	inventoryService := inventorying.NewService(productRepo, saleRepo)

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("Fuso horário inválido: %s", cfg.App.Timezone)
	}
	revenueService := revenue.NewService(saleRepo, location)

	server, err := api.New(cfg, inventoryService, revenueService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
