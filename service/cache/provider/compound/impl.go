package compound

import (
	"time"

	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// order of layers is matter, compound cache only handle forward filling
// and return immediately once cache hit. A failing layer is skipped on reads.
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	var (
		val    []byte
		ttl    time.Duration
		err    error
		hitIdx = -1
	)

	for idx, lyr := range im.layers {
		if val, ttl, err = lyr.Get(c, key); err == provider.ErrNotFound {
			continue
		} else if err != nil {
			c.WithField("err", err).WithField("layer", idx).Warn("layer.Get failed, skipped")
			continue
		}
		hitIdx = idx
		break
	}

	if hitIdx == -1 {
		return nil, 0, provider.ErrNotFound
	}

	// fill layers which missing cache
	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, val, ttl); err != nil {
			c.WithField("err", err).WithField("layer", idx).Warn("layer.Set failed")
		}
	}

	return val, ttl, nil
}

// Set writes every layer and reports the first failure
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Del clears every layer and reports the first failure
func (im *impl) Del(c ctx.Ctx, key string) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}
