package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/service/cache/provider"
	"github.com/zkzk-trade/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second)
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))

	ts.Equal(v, *c)

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFuncHit() {
	var (
		k     = "key"
		c     = &value{}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		return &value{"value"}, nil
	}

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(1, calls)
	ts.Equal("value", c.Value)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errBoom := errors.New("boom")
	c := &value{}
	err := ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return nil, errBoom
	})
	ts.ErrorIs(err, errBoom)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", c))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "a", value{"a"}))
	ts.NoError(ts.im.Set(mockCtx, "b", value{"b"}))
	ts.NoError(ts.im.Del(mockCtx, "a", "b", "missing"))

	c := &value{}
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "a", c))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "b", c))
}

func (ts *testsuite) TestGetByFuncCorruptedEntry() {
	k := "key"
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), []byte("{not json"), time.Minute))

	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &value{"fresh"}, nil
	}))
	ts.Equal("fresh", c.Value)

	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal("fresh", c.Value)
}

func (ts *testsuite) TestGetByFuncNotPointer() {
	c := &value{}
	err := ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return value{"value"}, nil
	})
	ts.Error(err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", c))
}
