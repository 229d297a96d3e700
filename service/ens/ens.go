package ens

import (
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
)

// ENS names the connected account in the header
type ENS interface {
	// ReverseResolve returns the primary name of address, "" when it has none
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
