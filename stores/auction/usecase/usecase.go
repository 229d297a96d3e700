package usecase

import (
	"fmt"
	"math/big"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/goroutine"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/base/state"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/auction"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/domain/wallet"
	"github.com/zkzk-trade/goapi/service/cache"
	"golang.org/x/xerrors"
)

type Config struct {
	Contract auction.Contract
	// Wallet is nil when no provider is configured
	Wallet wallet.Provider
	Store  *state.Store
	Cache  cache.Service
	// ListingFee is sent along with createAuction, in wei
	ListingFee *big.Int
	// Intn picks the featured auction, defaults to math/rand
	Intn func(n int) int
}

type auctionImpl struct {
	contract   auction.Contract
	wallet     wallet.Provider
	store      *state.Store
	cache      cache.Service
	listingFee *big.Int
	intn       func(n int) int

	handlersOnce sync.Once
	// chain holds the chain id read caches are scoped to, "" until the wallet switches
	chain atomic.Value
}

func NewAuction(cfg Config) auction.UseCase {
	if cfg.ListingFee == nil {
		cfg.ListingFee = new(big.Int)
	}
	if cfg.Intn == nil {
		cfg.Intn = rand.Intn
	}
	return &auctionImpl{
		contract:   cfg.Contract,
		wallet:     cfg.Wallet,
		store:      cfg.Store,
		cache:      cfg.Cache,
		listingFee: cfg.ListingFee,
		intn:       cfg.Intn,
	}
}

func (im *auctionImpl) prompt(c ctx.Ctx, err error) error {
	c.WithField("prompt", err.Error()).Warn("user action required")
	state.Set(im.store, auction.KeyPrompt, err.Error())
	return err
}

func (im *auctionImpl) requireWallet(c ctx.Ctx) error {
	if im.wallet == nil {
		return im.prompt(c, domain.ErrNoWalletProvider)
	}
	return nil
}

func (im *auctionImpl) ConnectedAccount() (domain.Address, bool) {
	account, ok := state.Get(im.store, auction.KeyConnectedAccount)
	if !ok || account.IsEmpty() {
		return "", false
	}
	return account, true
}

// readAccount is the caller address for views. Without a connected account views are
// still served, as the zero address.
func (im *auctionImpl) readAccount(c ctx.Ctx) domain.Address {
	if account, ok := im.ConnectedAccount(); ok {
		return account
	}
	c.Warn("no connected account, reading as zero address")
	return domain.EmptyAddress
}

func (im *auctionImpl) IsWalletConnected(c ctx.Ctx) (domain.Address, error) {
	if err := im.requireWallet(c); err != nil {
		return "", err
	}

	im.handlersOnce.Do(im.registerHandlers)

	accounts, err := im.wallet.Accounts(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Accounts failed")
		return "", err
	}
	if len(accounts) == 0 {
		c.Info("no accounts found")
		im.prompt(c, domain.ErrNoConnectedAccount)
		return "", nil
	}

	account := accounts[0].ToLower()
	state.Set(im.store, auction.KeyConnectedAccount, account)
	return account, nil
}

func (im *auctionImpl) ConnectWallet(c ctx.Ctx) (domain.Address, error) {
	if err := im.requireWallet(c); err != nil {
		return "", err
	}

	accounts, err := im.wallet.RequestAccounts(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.RequestAccounts failed")
		return "", err
	}
	if len(accounts) == 0 {
		return "", im.prompt(c, domain.ErrNoConnectedAccount)
	}

	account := accounts[0].ToLower()
	state.Set(im.store, auction.KeyConnectedAccount, account)
	return account, nil
}

// registerHandlers follows the wallet: a chain switch drops everything loaded so far and
// moves reads to that chain's cache scope, an account switch reloads the account's collections.
func (im *auctionImpl) registerHandlers() {
	im.wallet.On(wallet.EventChainChanged, func(payload interface{}) {
		goroutine.RecoverableGo(func() {
			c := ctx.Background()
			c.WithField("chainId", payload).Info("chain changed, reloading")
			im.chain.Store(fmt.Sprint(payload))
			im.store.Reset()
			if _, err := im.IsWalletConnected(c); err != nil {
				return
			}
			im.LoadAuctions(c)
		}, goroutine.WithName(string(wallet.EventChainChanged)))
	})

	im.wallet.On(wallet.EventAccountsChanged, func(payload interface{}) {
		accounts, _ := payload.([]domain.Address)
		if len(accounts) == 0 {
			state.Set(im.store, auction.KeyConnectedAccount, domain.Address(""))
			state.Set(im.store, auction.KeyCollections, nil)
			im.prompt(ctx.Background(), domain.ErrNoConnectedAccount)
			return
		}
		state.Set(im.store, auction.KeyConnectedAccount, accounts[0].ToLower())
		goroutine.RecoverableGo(func() {
			c := ctx.Background()
			account, err := im.IsWalletConnected(c)
			if err != nil || account.IsEmpty() {
				return
			}
			c.WithField("account", account).Info("account changed, reloading collections")
			im.invalidate(c, keys.CollectionsKey(string(account)))
			im.LoadCollections(c)
		}, goroutine.WithName(string(wallet.EventAccountsChanged)))
	})
}

type sendFn func(opts *bind.TransactOpts) (*types.Transaction, error)

// send signs with the connected account, submits and waits until the transaction is mined
func (im *auctionImpl) send(c ctx.Ctx, op string, value *big.Int, fn sendFn) (domain.Address, error) {
	if err := im.requireWallet(c); err != nil {
		return "", err
	}
	account, ok := im.ConnectedAccount()
	if !ok {
		return "", im.prompt(c, domain.ErrNoConnectedAccount)
	}

	c = ctx.WithValues(c, map[string]interface{}{"op": op, "account": account})

	chainId, err := im.contract.ChainID(c)
	if err != nil {
		c.WithField("err", err).Error("contract.ChainID failed")
		return "", err
	}

	opts, err := im.wallet.Transactor(c, account, chainId)
	if err != nil {
		c.WithField("err", err).Error("wallet.Transactor failed")
		return "", err
	}
	opts.Context = c
	if value != nil {
		opts.Value = value
	}

	tx, err := fn(opts)
	if err != nil {
		c.WithField("err", err).Error(op + " failed")
		return "", err
	}
	c.WithField("tx", tx.Hash().Hex()).Info("transaction sent")

	if _, err := im.contract.WaitMined(c, tx); err != nil {
		c.WithFields(log.Fields{"err": err, "tx": tx.Hash().Hex()}).Error("contract.WaitMined failed")
		return "", err
	}
	return account, nil
}

// key scopes a read cache key to the current chain
func (im *auctionImpl) key(k string) string {
	if chain, _ := im.chain.Load().(string); chain != "" {
		return keys.ChainKey(chain, k)
	}
	return k
}

func (im *auctionImpl) invalidate(c ctx.Ctx, keyList ...string) {
	scoped := make([]string, 0, len(keyList))
	for _, k := range keyList {
		scoped = append(scoped, im.key(k))
	}
	if err := im.cache.Del(c, scoped...); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}

func (im *auctionImpl) CreateAuction(c ctx.Ctx, p *auction.CreateParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}
	price, err := auction.ParseEther(p.Price)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "price": p.Price}).Error("ParseEther failed")
		return err
	}

	account, err := im.send(c, "createAuction", im.listingFee, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.CreateAuction(c, opts, p.Name, p.Description, price)
	})
	if err != nil {
		return err
	}

	im.invalidate(c, keys.LiveAuctionsKey(), keys.CollectionsKey(string(account)))
	_, err = im.LoadAuctions(c)
	return err
}

func (im *auctionImpl) UpdatePrice(c ctx.Ctx, p *auction.UpdatePriceParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}
	price, err := auction.ParseEther(p.Price)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "price": p.Price}).Error("ParseEther failed")
		return err
	}

	account, err := im.send(c, "changePrice", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.ChangePrice(c, opts, big.NewInt(p.Domain), price)
	})
	if err != nil {
		c.WithField("domain", p.Domain).Warn("price not changed")
		return err
	}

	im.invalidate(c, keys.LiveAuctionsKey(), keys.AuctionKey(p.Domain), keys.CollectionsKey(string(account)))
	_, err = im.LoadAuctions(c)
	return err
}

func (im *auctionImpl) OfferItemOnMarket(c ctx.Ctx, p *auction.OfferParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}

	account, err := im.send(c, "offerAuction", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.OfferAuction(c, opts, big.NewInt(p.Domain), p.Biddable,
			big.NewInt(p.Sec), big.NewInt(p.Min), big.NewInt(p.Hour), big.NewInt(p.Day))
	})
	if err != nil {
		c.WithField("domain", p.Domain).Warn("item not offered")
		return err
	}

	im.invalidate(c, keys.LiveAuctionsKey(), keys.AuctionKey(p.Domain), keys.CollectionsKey(string(account)))
	_, err = im.LoadAuctions(c)
	return err
}

func (im *auctionImpl) BuyItem(c ctx.Ctx, p *auction.TradeParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}
	price, err := auction.ParseEther(p.Price)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "price": p.Price}).Error("ParseEther failed")
		return err
	}

	account, err := im.send(c, "buyAuctionedItem", price, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.BuyAuctionedItem(c, opts, big.NewInt(p.Domain))
	})
	if err != nil {
		c.WithField("domain", p.Domain).Warn("item not bought")
		return err
	}

	im.invalidate(c, keys.LiveAuctionsKey(), keys.AuctionKey(p.Domain), keys.CollectionsKey(string(account)))
	if _, err := im.LoadAuctions(c); err != nil {
		return err
	}
	_, err = im.LoadAuction(c, p.Domain)
	return err
}

func (im *auctionImpl) PlaceBid(c ctx.Ctx, p *auction.TradeParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}
	price, err := auction.ParseEther(p.Price)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "price": p.Price}).Error("ParseEther failed")
		return err
	}

	if _, err := im.send(c, "placeBid", price, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.PlaceBid(c, opts, big.NewInt(p.Domain))
	}); err != nil {
		c.WithField("domain", p.Domain).Warn("bid not placed")
		return err
	}

	im.invalidate(c, keys.LiveAuctionsKey(), keys.AuctionKey(p.Domain), keys.BiddersKey(p.Domain))
	if _, err := im.GetBidders(c, p.Domain); err != nil {
		return err
	}
	_, err = im.LoadAuction(c, p.Domain)
	return err
}

func (im *auctionImpl) ClaimPrize(c ctx.Ctx, p *auction.ClaimParams) error {
	if err := im.requireWallet(c); err != nil {
		return err
	}

	account, err := im.send(c, "claimPrize", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return im.contract.ClaimPrize(c, opts, big.NewInt(p.Domain), big.NewInt(p.Id))
	})
	if err != nil {
		c.WithFields(log.Fields{"domain": p.Domain, "id": p.Id}).Warn("prize not claimed")
		return err
	}

	im.invalidate(c, keys.AuctionKey(p.Domain), keys.BiddersKey(p.Domain), keys.CollectionsKey(string(account)))
	_, err = im.GetBidders(c, p.Domain)
	return err
}

func (im *auctionImpl) LoadAuctions(c ctx.Ctx) ([]*auction.Auction, error) {
	if err := im.requireWallet(c); err != nil {
		return nil, err
	}
	from := im.readAccount(c)

	var auctions []*auction.Auction
	if err := im.cache.GetByFunc(c, im.key(keys.LiveAuctionsKey()), &auctions, func() (interface{}, error) {
		raws, err := im.contract.GetLiveAuctions(c, from)
		if err != nil {
			c.WithField("err", err).Error("contract.GetLiveAuctions failed")
			return nil, err
		}
		res, err := auction.StructuredAuctions(raws)
		if err != nil {
			c.WithField("err", err).Error("StructuredAuctions failed")
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}

	state.Set(im.store, auction.KeyAuctions, auctions)
	var featured *auction.Auction
	if len(auctions) > 0 {
		featured = auctions[im.intn(len(auctions))]
	}
	state.Set(im.store, auction.KeyAuction, featured)
	return auctions, nil
}

func (im *auctionImpl) LoadAuction(c ctx.Ctx, id int64) (*auction.Auction, error) {
	if err := im.requireWallet(c); err != nil {
		return nil, err
	}
	from := im.readAccount(c)

	var item auction.Auction
	if err := im.cache.GetByFunc(c, im.key(keys.AuctionKey(id)), &item, func() (interface{}, error) {
		raw, err := im.contract.GetAuction(c, from, big.NewInt(id))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "domain": id}).Error("contract.GetAuction failed")
			return nil, err
		}
		return auction.StructuredAuction(*raw)
	}); err != nil {
		return nil, err
	}

	state.Set(im.store, auction.KeyAuction, &item)
	return &item, nil
}

func (im *auctionImpl) GetBidders(c ctx.Ctx, id int64) ([]*auction.Bidder, error) {
	if err := im.requireWallet(c); err != nil {
		return nil, err
	}
	from := im.readAccount(c)

	var bidders []*auction.Bidder
	if err := im.cache.GetByFunc(c, im.key(keys.BiddersKey(id)), &bidders, func() (interface{}, error) {
		raws, err := im.contract.GetBidders(c, from, big.NewInt(id))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "domain": id}).Error("contract.GetBidders failed")
			return nil, err
		}
		res, err := auction.StructuredBidders(raws)
		if err != nil {
			c.WithField("err", err).Error("StructuredBidders failed")
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}

	state.Set(im.store, auction.KeyBidders, bidders)
	return bidders, nil
}

func (im *auctionImpl) LoadCollections(c ctx.Ctx) ([]*auction.Auction, error) {
	if err := im.requireWallet(c); err != nil {
		return nil, err
	}
	from := im.readAccount(c)

	var collections []*auction.Auction
	if err := im.cache.GetByFunc(c, im.key(keys.CollectionsKey(string(from))), &collections, func() (interface{}, error) {
		raws, err := im.contract.GetMyAuctions(c, from)
		if err != nil {
			c.WithField("err", err).Error("contract.GetMyAuctions failed")
			return nil, err
		}
		res, err := auction.StructuredAuctions(raws)
		if err != nil {
			c.WithField("err", err).Error("StructuredAuctions failed")
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}

	state.Set(im.store, auction.KeyCollections, collections)
	return collections, nil
}

// Select puts the auction into focus and opens modal over it. Auctions already listed
// in the store are reused, others are loaded.
func (im *auctionImpl) Select(c ctx.Ctx, id int64, modal string) (*auction.Auction, error) {
	key, ok := auction.ModalKey(modal)
	if !ok {
		return nil, xerrors.Errorf("modal %q: %w", modal, domain.ErrBadParamInput)
	}

	item := im.findListed(id)
	if item == nil {
		var err error
		if item, err = im.LoadAuction(c, id); err != nil {
			return nil, err
		}
	} else {
		state.Set(im.store, auction.KeyAuction, item)
	}

	state.Set(im.store, key, auction.ModalOpen)
	return item, nil
}

func (im *auctionImpl) findListed(id int64) *auction.Auction {
	for _, k := range []state.Key[[]*auction.Auction]{auction.KeyAuctions, auction.KeyCollections} {
		list, _ := state.Get(im.store, k)
		for _, a := range list {
			if a != nil && a.Domain == id {
				return a
			}
		}
	}
	return nil
}

func (im *auctionImpl) CloseModal(c ctx.Ctx, modal string) error {
	key, ok := auction.ModalKey(modal)
	if !ok {
		return xerrors.Errorf("modal %q: %w", modal, domain.ErrBadParamInput)
	}
	state.Set(im.store, key, auction.ModalClosed)
	return nil
}
