package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/chart"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/trend-dashboard-api/internal/api"
	"github.com/vfg2006/trend-dashboard-api/internal/api/handler"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/scheduler"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
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

	provider, closeProvider := seriesProvider(ctx, cfg)
	defer closeProvider()

	// Com REDIS_ADDR o snapshot passa pelo cache versionado
	var invalidator scheduler.CacheInvalidator
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis indisponível; o cache vai repassar as leituras para a origem")
		}

		seriesCache := cache.NewSeriesCache(client, provider, cfg.Redis.CacheTTL)
		if err := seriesCache.ListenForInvalidation(ctx); err != nil {
			logrus.WithError(err).Warn("Invalidações do cache não assinadas; a versão será lida do Redis")
		}

		provider = seriesCache
		invalidator = seriesCache
		logrus.WithField("addr", cfg.Redis.Addr).Info("Cache de séries habilitado")
	}

	formatter, err := trending.NewFormatterFromConfig(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar formatadores do gráfico")
	}

	trendService := trending.NewService(cfg, provider, chart.NewRenderer(cfg.Chart), formatter)

	authenticator := authenticating.NewService(cfg)

	// Inicializa os agendadores
	seriesRefreshService := scheduler.NewSeriesRefreshService(provider, invalidator, cfg)
	viewSweepService := scheduler.NewViewSweepService(trendService, cfg)

	if err := seriesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de séries")
	} else {
		logrus.Info("Agendador de atualização de séries iniciado com sucesso")
	}

	if err := viewSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de visões")
	} else {
		logrus.Info("Agendador de limpeza de visões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trendService,
		authenticator,
		handler.CronJobServices{
			SeriesRefreshService: seriesRefreshService,
			ViewSweepService:     viewSweepService,
		},
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

// seriesProvider escolhe a origem das séries conforme DATA_SOURCE
func seriesProvider(ctx context.Context, cfg *config.Config) (trending.SeriesProvider, func()) {
	if cfg.App.DataSource == config.DataSourcePostgres {
		conn := pgconn(ctx, cfg.Database)
		return repository.NewSeriesRepository(conn), func() { conn.Close() }
	}

	provider, err := datasource.NewMockProvider(cfg.Mock)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar séries de demonstração")
	}

	logrus.WithFields(logrus.Fields{
		"days":  cfg.Mock.Days,
		"weeks": cfg.Mock.Weeks,
	}).Info("Usando séries de demonstração")

	return provider, func() {}
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
