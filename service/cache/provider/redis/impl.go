package redis

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/metrics"
	"github.com/zkzk-trade/goapi/service/cache/provider"
)

const (
	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

// Pool hands out connections, *redis.Pool satisfies it
type Pool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

type impl struct {
	name string
	pool Pool
	met  metrics.Service
}

func NewRedis(name string, pool Pool) provider.Provider {
	return &impl{
		name: name,
		pool: pool,
		met:  metrics.New("redis"),
	}
}

func (im *impl) do(c ctx.Ctx, command string, args ...interface{}) (interface{}, error) {
	defer im.met.BumpTime("cmd.time", "cluster", im.name, "cmd", command).End()

	conn, err := im.pool.GetContext(c)
	if err != nil {
		im.met.BumpSum("getConn.err", 1, "cluster", im.name)
		return nil, err
	}
	defer conn.Close()
	return conn.Do(command, args...)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := redis.Bytes(im.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, 0, err
	}

	ttl, err := redis.Int64(im.do(c, "PTTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.PTTL failed")
		return nil, 0, err
	}
	if ttl == retTTLNoExpire || ttl < 0 {
		return val, 0, nil
	}
	return val, time.Duration(ttl) * time.Millisecond, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	args := []interface{}{key, value}
	if ms := ttl.Milliseconds(); ms > 0 {
		args = append(args, "PX", ms)
	}
	if _, err := im.do(c, "SET", args...); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.do(c, "DEL", key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
