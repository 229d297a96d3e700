package contract

import (
	"errors"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/zkzk-trade/goapi/base/abi"
	bCtx "github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/metrics"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/auction"
	"github.com/zkzk-trade/goapi/service/chain"
)

var errEmptyOutput = errors.New("empty output")

type Auction struct {
	chainService chain.Client
	abi          ethabi.ABI
	addr         common.Address
	met          metrics.Service
}

func NewAuction(chainService chain.Client, addr common.Address) auction.Contract {
	return &Auction{
		chainService: chainService,
		abi:          baseabi.AuctionABI,
		addr:         addr,
		met:          metrics.New("contract"),
	}
}

func (a *Auction) call(ctx bCtx.Ctx, from domain.Address, method string, params ...interface{}) (interface{}, error) {
	defer a.met.BumpTime("time", "method", method).End()

	unpacked, err := a.chainService.Call(ctx, from.ToCommon(), a.addr, a.abi, method, params...)
	if err != nil {
		a.met.BumpSum("err", 1, "method", method)
		return nil, domain.NewRemoteError(method, err)
	}
	if len(unpacked) == 0 {
		a.met.BumpSum("err", 1, "method", method)
		return nil, domain.NewRemoteError(method, errEmptyOutput)
	}
	return unpacked[0], nil
}

func (a *Auction) transact(ctx bCtx.Ctx, opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error) {
	defer a.met.BumpTime("time", "method", method).End()

	tx, err := a.chainService.Transact(ctx, opts, a.addr, a.abi, method, params...)
	if err != nil {
		a.met.BumpSum("err", 1, "method", method)
		return nil, domain.NewRemoteError(method, err)
	}
	return tx, nil
}

func (a *Auction) auctions(ctx bCtx.Ctx, from domain.Address, method string) ([]auction.RawAuction, error) {
	out, err := a.call(ctx, from, method)
	if err != nil {
		return nil, err
	}
	return *ethabi.ConvertType(out, new([]auction.RawAuction)).(*[]auction.RawAuction), nil
}

func (a *Auction) GetLiveAuctions(ctx bCtx.Ctx, from domain.Address) ([]auction.RawAuction, error) {
	return a.auctions(ctx, from, "getLiveAuctions")
}

func (a *Auction) GetMyAuctions(ctx bCtx.Ctx, from domain.Address) ([]auction.RawAuction, error) {
	return a.auctions(ctx, from, "getMyAuctions")
}

func (a *Auction) GetAuction(ctx bCtx.Ctx, from domain.Address, id *big.Int) (*auction.RawAuction, error) {
	out, err := a.call(ctx, from, "getAuction", id)
	if err != nil {
		return nil, err
	}
	return ethabi.ConvertType(out, new(auction.RawAuction)).(*auction.RawAuction), nil
}

func (a *Auction) GetBidders(ctx bCtx.Ctx, from domain.Address, id *big.Int) ([]auction.RawBidder, error) {
	out, err := a.call(ctx, from, "getBidders", id)
	if err != nil {
		return nil, err
	}
	return *ethabi.ConvertType(out, new([]auction.RawBidder)).(*[]auction.RawBidder), nil
}

func (a *Auction) CreateAuction(ctx bCtx.Ctx, opts *bind.TransactOpts, name, description string, price *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "createAuction", name, description, price)
}

func (a *Auction) ChangePrice(ctx bCtx.Ctx, opts *bind.TransactOpts, id, price *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "changePrice", id, price)
}

func (a *Auction) OfferAuction(ctx bCtx.Ctx, opts *bind.TransactOpts, id *big.Int, biddable bool, sec, min, hour, day *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "offerAuction", id, biddable, sec, min, hour, day)
}

func (a *Auction) BuyAuctionedItem(ctx bCtx.Ctx, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "buyAuctionedItem", id)
}

func (a *Auction) PlaceBid(ctx bCtx.Ctx, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "placeBid", id)
}

func (a *Auction) ClaimPrize(ctx bCtx.Ctx, opts *bind.TransactOpts, id, bidId *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, "claimPrize", id, bidId)
}

// WaitMined keeps ErrTxReverted visible, other failures are reported as remote errors
func (a *Auction) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	defer a.met.BumpTime("time", "method", "waitMined").End()

	receipt, err := a.chainService.WaitMined(ctx, tx)
	if errors.Is(err, domain.ErrTxReverted) {
		a.met.BumpSum("reverted", 1)
		return receipt, err
	} else if err != nil {
		a.met.BumpSum("err", 1, "method", "waitMined")
		return nil, domain.NewRemoteError("waitMined", err)
	}
	return receipt, nil
}

func (a *Auction) ChainID(ctx bCtx.Ctx) (*big.Int, error) {
	id, err := a.chainService.ChainID(ctx)
	if err != nil {
		return nil, domain.NewRemoteError("chainId", err)
	}
	return id, nil
}
