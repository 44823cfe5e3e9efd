package infra

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crmconsole/internal/cache"
	"github.com/umalmyha/crmconsole/internal/config"
)

// Stores keep sessions and remembered lists
type Stores struct {
	Sessions cache.Store
	Lists    cache.Store
	close    func() error
}

// Close releases connections held by stores
func (s Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStores builds redis stores if redis is configured, in-process stores otherwise.
// In-process stores are lost on restart and are not shared between instances.
func NewStores(ctx context.Context, cfg config.Config) (Stores, error) {
	if !cfg.RedisCfg.Enabled() {
		logrus.Info("redis is not configured, sessions and lists are kept in process memory")
		mem := cache.NewMemoryStore(cfg.CacheCfg.SizeBytes)
		return Stores{Sessions: mem, Lists: mem}, nil
	}

	client, err := Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return Stores{}, err
	}

	shared := cache.NewRedisStore(client, "crmconsole")
	return Stores{Sessions: shared, Lists: shared, close: client.Close}, nil
}
