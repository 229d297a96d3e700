package repository

import (
	"time"

	"github.com/zkzk-trade/goapi/base/ctx"
	hcdomain "github.com/zkzk-trade/goapi/domain/healthcheck"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/service/cache/provider"
	"github.com/zkzk-trade/goapi/service/chain"
)

const timeout = 2 * time.Second

type impl struct {
	chain chain.Client
	cache provider.Provider
}

// New creates new HealthCheckRepo probing the rpc node and the read cache
func New(
	chain chain.Client,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
		cache: cache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, timeout)
	defer cancel()
	n, err := im.chain.BlockNumber(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping chain error")
		return 0, err
	}
	return n, nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, timeout)
	defer cancel()

	key := keys.RedisKey(keys.PfxHealthCheck, "testset")
	if err := im.cache.Set(ctx, key, []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	if _, _, err := im.cache.Get(ctx, key); err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	if err := im.cache.Del(ctx, key); err != nil {
		context.WithField("err", err).Error("test cache del failed")
		return err
	}
	return nil
}
