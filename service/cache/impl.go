package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/xerrors"

	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/base/metrics"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/service/cache/provider"
)

var mt = metrics.New("cache")

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

// GetByFunc reads key into container, calling getter and filling the cache on a miss.
// getter must return a pointer of the container's type.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	switch err := im.Get(c, key, container); {
	case err == nil:
		mt.BumpSum("hit", 1, "pfx", im.pfx)
		return nil
	case !xerrors.Is(err, ErrNotFound):
		// a broken entry is refetched rather than failing the read
		c.WithFields(fields(key, err)).Warn("Get failed, fallback to getter")
	}
	mt.BumpSum("miss", 1, "pfx", im.pfx)

	val, err := getter()
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return xerrors.Errorf("getter of %s returned %T, want a non nil pointer", key, val)
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithFields(fields(key, err)).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(rv.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if xerrors.Is(err, provider.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(fields(key, err)).Error("cache.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		c.WithFields(fields(key, err)).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithFields(fields(key, err)).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithFields(fields(key, err)).Error("cache.Set failed")
		return err
	}
	return nil
}

// Del removes every key, stopping at the first provider failure
func (im *impl) Del(c ctx.Ctx, keyList ...string) error {
	for _, key := range keyList {
		key = keys.RedisKey(im.pfx, key)
		if err := im.cache.Del(c, key); err != nil {
			c.WithFields(fields(key, err)).Error("cache.Del failed")
			return err
		}
		mt.BumpSum("del", 1, "pfx", im.pfx)
	}
	return nil
}

func fields(key string, err error) log.Fields {
	return log.Fields{"key": key, "err": err}
}
