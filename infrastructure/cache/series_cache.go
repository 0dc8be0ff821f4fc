package cache

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
)

const (
	versionKey  = "trend:series:version"
	bumpChannel = "trend.series.bump"
	snapshotKey = "trend:series:snapshot"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Loader é a origem das séries encapsulada pelo cache
type Loader interface {
	LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error)
}

// SeriesCache guarda o snapshot das séries no Redis com chave versionada.
// Bump invalida todas as entradas de uma vez. Com ListenForInvalidation ativo a
// versão vem das notificações e não é lida do Redis a cada carga.
type SeriesCache struct {
	client *redis.Client
	loader Loader
	ttl    time.Duration
	known  atomic.Int64 // zero quando não há assinatura ativa
}

func NewSeriesCache(client *redis.Client, loader Loader, ttl time.Duration) *SeriesCache {
	return &SeriesCache{client: client, loader: loader, ttl: ttl}
}

// Version retorna a versão corrente, inicializando quando ausente
func (c *SeriesCache) Version(ctx context.Context) (int64, error) {
	if c.client == nil {
		return 0, nil
	}

	if ver := c.known.Load(); ver > 0 {
		return ver, nil
	}

	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err == redis.Nil {
		if err := c.client.Set(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, errors.Wrap(err, "erro ao inicializar versão do cache")
		}
		return 1, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler versão do cache")
	}

	return ver, nil
}

func (c *SeriesCache) buildKey(ctx context.Context, parts ...string) (string, error) {
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(append(parts, strconv.FormatInt(ver, 10)), ":"), nil
}

// LoadSnapshot devolve o snapshot em cache ou o carrega da origem.
// Falhas do Redis não impedem a leitura da origem.
func (c *SeriesCache) LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error) {
	if c.client == nil {
		return c.loader.LoadSnapshot(ctx)
	}

	key, err := c.buildKey(ctx, snapshotKey)
	if err != nil {
		logrus.WithError(err).Warn("Cache de séries indisponível, lendo da origem")
		return c.loader.LoadSnapshot(ctx)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var snapshot domain.SeriesSnapshot
		if err := json.Unmarshal(payload, &snapshot); err == nil {
			logrus.WithField("key", key).Debug("Snapshot de séries obtido do cache")
			return &snapshot, nil
		}
		logrus.WithField("key", key).Warn("Snapshot em cache corrompido, recarregando")
	} else if err != redis.Nil {
		logrus.WithError(err).Warn("Erro ao ler snapshot do cache, lendo da origem")
	}

	snapshot, err := c.loader.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar snapshot")
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar snapshot no cache")
	}

	return snapshot, nil
}

// Bump incrementa a versão e publica o evento de invalidação
func (c *SeriesCache) Bump(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	ver, err := c.client.Incr(ctx, versionKey).Result()
	if err != nil {
		return errors.Wrap(err, "erro ao incrementar versão do cache")
	}
	c.advance(ver)

	return c.client.Publish(ctx, bumpChannel, strconv.FormatInt(ver, 10)).Err()
}

// advance só avança a versão conhecida, e apenas enquanto há assinatura
func (c *SeriesCache) advance(ver int64) {
	for {
		current := c.known.Load()
		if current == 0 || ver <= current {
			return
		}
		if c.known.CompareAndSwap(current, ver) {
			return
		}
	}
}

// ListenForInvalidation assina as invalidações publicadas por qualquer instância e
// aplica a versão recebida. Payload inválido volta a ler a versão do Redis.
func (c *SeriesCache) ListenForInvalidation(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	pubsub := c.client.Subscribe(ctx, bumpChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return errors.Wrap(err, "erro ao assinar invalidações do cache")
	}

	ver, err := c.Version(ctx)
	if err != nil {
		_ = pubsub.Close()
		return err
	}
	c.known.Store(ver)

	go func() {
		defer func() {
			c.known.Store(0)
			_ = pubsub.Close()
		}()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ver, err := strconv.ParseInt(msg.Payload, 10, 64)
				if err != nil || ver <= 0 {
					logrus.WithField("payload", msg.Payload).Warn("Invalidação com versão inválida, relendo do Redis")
					c.known.Store(0)
					if ver, err := c.Version(ctx); err == nil {
						c.known.Store(ver)
					}
					continue
				}
				c.advance(ver)
				logrus.WithField("version", ver).Debug("Invalidação do cache de séries aplicada")
			}
		}
	}()

	return nil
}
