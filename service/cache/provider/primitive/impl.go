package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, 0, err
	}
	if exp == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(exp), 0)), nil
}

// Set stores value for ttl, rounded up to whole seconds. A zero ttl never expires.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int((ttl + time.Second - 1) / time.Second)
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
