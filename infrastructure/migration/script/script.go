package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS trend_daily (
		date       DATE PRIMARY KEY,
		revenue    NUMERIC(14, 2) NOT NULL,
		spend      NUMERIC(14, 2) NOT NULL,
		roas       NUMERIC(8, 4) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trend_weekly (
		week       TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		revenue    NUMERIC(14, 2) NOT NULL,
		spend      NUMERIC(14, 2) NOT NULL,
		roas       NUMERIC(8, 4) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS trend_weekly_position_idx ON trend_weekly (position)`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar tabelas")
		}
	}
	logrus.Info("Tabelas trend_daily e trend_weekly prontas")

	provider, err := datasource.NewMockProvider(cfg.Mock)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar séries de demonstração")
	}

	snapshot, err := provider.LoadSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar séries de demonstração")
	}

	repo := repository.NewSeriesRepository(conn)

	startTime := time.Now()
	if err := repo.SaveDaily(ctx, snapshot.Daily); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar série diária")
	}
	if err := repo.SaveWeekly(ctx, snapshot.Weekly); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar série semanal")
	}

	logrus.WithFields(logrus.Fields{
		"daily":   len(snapshot.Daily),
		"weekly":  len(snapshot.Weekly),
		"elapsed": time.Since(startTime).String(),
	}).Info("Migração concluída")
}
