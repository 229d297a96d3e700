package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/service/cache"
	"github.com/zkzk-trade/goapi/service/cache/provider"
)

const cacheTtl = 10 * time.Minute

type lookupFunc func(address common.Address) (string, error)

type impl struct {
	lookup lookupFunc
	cache  cache.Service
}

type disabled struct{}

func (disabled) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	return "", nil
}

// New dials rpc, ENS lives on mainnet whatever chain the auction is on.
// Without rpc every lookup answers "".
func New(c ctx.Ctx, rpc string, cacheProvider provider.Provider) (ENS, error) {
	if rpc == "" {
		return disabled{}, nil
	}
	client, err := ethclient.DialContext(c, rpc)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "rpc": rpc}).Error("ethclient.DialContext failed")
		return nil, err
	}
	return newWithLookup(func(address common.Address) (string, error) {
		return goens.ReverseResolve(bind.ContractBackend(client), address)
	}, cacheProvider), nil
}

func newWithLookup(lookup lookupFunc, cacheProvider provider.Provider) *impl {
	return &impl{
		lookup: lookup,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cacheTtl,
			Pfx:   keys.PfxEns,
			Cache: cacheProvider,
		}),
	}
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.lookup(address.ToCommon())
		if isNoName(err) {
			empty := ""
			return &empty, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

// isNoName reports the go-ens answers for an address without a primary name
func isNoName(err error) bool {
	switch fmt.Sprint(err) {
	case "not a resolver", "no resolution", "unregistered name":
		return true
	}
	return false
}
