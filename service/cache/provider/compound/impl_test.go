package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/service/cache/provider"
	"github.com/zkzk-trade/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()

	errDown = errors.New("down")
)

type brokenLayer struct{}

func (brokenLayer) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	return nil, 0, errDown
}

func (brokenLayer) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return errDown
}

func (brokenLayer) Del(c ctx.Ctx, key string) error {
	return errDown
}

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound([]provider.Provider{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)

	time.Sleep(time.Second)
	_, _, e = ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc  string
		Key   string
		Val   string
		Err   error
		Cache provider.Provider
	}{
		{
			Desc:  "Success from layer 0",
			Key:   "key 0",
			Val:   "value 0",
			Err:   nil,
			Cache: ts.lyr0,
		},
		{
			Desc:  "Success from layer 1",
			Key:   "key 1",
			Val:   "value 1",
			Err:   nil,
			Cache: ts.lyr1,
		},
		{
			Desc: "Not found",
			Key:  "key 2",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if c.Cache != nil {
			ts.NoError(c.Cache.Set(mockCtx, c.Key, []byte(c.Val), 10*time.Second), c.Desc)
		}

		v, _, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
	}

	// layer 1 hit is filled forward
	v, _, e := ts.lyr0.Get(mockCtx, "key 1")
	ts.NoError(e)
	ts.Equal("value 1", string(v))
}

func (ts *testsuite) TestBrokenLayer() {
	im := NewCompound([]provider.Provider{brokenLayer{}, ts.lyr1})
	ts.NoError(ts.lyr1.Set(mockCtx, "key", []byte("value"), 10*time.Second))

	v, _, e := im.Get(mockCtx, "key")
	ts.NoError(e)
	ts.Equal("value", string(v))

	ts.ErrorIs(im.Set(mockCtx, "other", []byte("value"), time.Second), errDown)
	// the healthy layer is still written
	_, _, e = ts.lyr1.Get(mockCtx, "other")
	ts.NoError(e)

	ts.ErrorIs(im.Del(mockCtx, "key"), errDown)
	_, _, e = ts.lyr1.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, e)
}
