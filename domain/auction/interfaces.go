package auction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
)

// Contract is the deployed auction contract
type Contract interface {
	GetLiveAuctions(c ctx.Ctx, from domain.Address) ([]RawAuction, error)
	GetAuction(c ctx.Ctx, from domain.Address, id *big.Int) (*RawAuction, error)
	GetBidders(c ctx.Ctx, from domain.Address, id *big.Int) ([]RawBidder, error)
	GetMyAuctions(c ctx.Ctx, from domain.Address) ([]RawAuction, error)

	CreateAuction(c ctx.Ctx, opts *bind.TransactOpts, name, description string, price *big.Int) (*types.Transaction, error)
	ChangePrice(c ctx.Ctx, opts *bind.TransactOpts, id, price *big.Int) (*types.Transaction, error)
	OfferAuction(c ctx.Ctx, opts *bind.TransactOpts, id *big.Int, biddable bool, sec, min, hour, day *big.Int) (*types.Transaction, error)
	BuyAuctionedItem(c ctx.Ctx, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error)
	PlaceBid(c ctx.Ctx, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error)
	ClaimPrize(c ctx.Ctx, opts *bind.TransactOpts, id, bidId *big.Int) (*types.Transaction, error)

	WaitMined(c ctx.Ctx, tx *types.Transaction) (*types.Receipt, error)
	ChainID(c ctx.Ctx) (*big.Int, error)
}

// UseCase drives the contract on behalf of the connected account and keeps the store fresh
type UseCase interface {
	IsWalletConnected(c ctx.Ctx) (domain.Address, error)
	ConnectWallet(c ctx.Ctx) (domain.Address, error)
	ConnectedAccount() (domain.Address, bool)

	CreateAuction(c ctx.Ctx, p *CreateParams) error
	UpdatePrice(c ctx.Ctx, p *UpdatePriceParams) error
	OfferItemOnMarket(c ctx.Ctx, p *OfferParams) error
	BuyItem(c ctx.Ctx, p *TradeParams) error
	PlaceBid(c ctx.Ctx, p *TradeParams) error
	ClaimPrize(c ctx.Ctx, p *ClaimParams) error

	LoadAuctions(c ctx.Ctx) ([]*Auction, error)
	LoadAuction(c ctx.Ctx, id int64) (*Auction, error)
	GetBidders(c ctx.Ctx, id int64) ([]*Bidder, error)
	LoadCollections(c ctx.Ctx) ([]*Auction, error)

	Select(c ctx.Ctx, id int64, modal string) (*Auction, error)
	CloseModal(c ctx.Ctx, modal string) error
}
