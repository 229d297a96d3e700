package chain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/zkzk-trade/goapi/base/ctx"
	bEthereum "github.com/zkzk-trade/goapi/base/ethereum"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/domain"
	"golang.org/x/xerrors"
)

const (
	defaultConfirmTimeout   = 2 * time.Minute
	defaultMaxConcurrentRpc = 8
)

type ClientCfg struct {
	RpcUrl           string
	ChainId          int64
	ConfirmTimeout   time.Duration
	MaxConcurrentRpc int
}

type Client interface {
	// Call runs a view method as from, so msg.sender scoped views answer for that account
	Call(ctx bCtx.Ctx, from, to common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a method call with opts
	Transact(ctx bCtx.Ctx, opts *bind.TransactOpts, to common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitMined blocks until tx is mined or the confirm timeout passes, a reverted tx yields ErrTxReverted
	WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error)
	ChainID(ctx bCtx.Ctx) (*big.Int, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
}

type clientImpl struct {
	backend        bEthereum.Backend
	confirmTimeout time.Duration
}

// NewClient dials the node. A configured chain id must match the node's at startup.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	n := cfg.MaxConcurrentRpc
	if n <= 0 {
		n = defaultMaxConcurrentRpc
	}
	return NewClientWithBackend(ctx, bEthereum.NewTrottledClient(client, n), cfg)
}

func NewClientWithBackend(ctx bCtx.Ctx, backend bEthereum.Backend, cfg *ClientCfg) (Client, error) {
	timeout := cfg.ConfirmTimeout
	if timeout <= 0 {
		timeout = defaultConfirmTimeout
	}
	c := &clientImpl{
		backend:        backend,
		confirmTimeout: timeout,
	}
	if cfg.ChainId != 0 {
		expected := big.NewInt(cfg.ChainId)
		if actual, err := backend.ChainID(ctx); err != nil {
			// soft warning, still let the gateway start
			ctx.WithField("err", err).Warn("backend.ChainID failed")
		} else if actual.Cmp(expected) != 0 {
			ctx.WithFields(log.Fields{
				"expected": expected,
				"actual":   actual,
			}).Error("chain id mismatch")
			return nil, xerrors.Errorf("node serves chain %s: %w", actual, domain.ErrUnsupportedChain)
		}
	}
	return c, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, from, to common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, opts *bind.TransactOpts, to common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	if opts.Context == nil {
		opts.Context = ctx
	}
	contract := bind.NewBoundContract(to, _abi, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"from":   opts.From,
			"err":    err,
		}).Error("contract.Transact failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"tx":     tx.Hash().Hex(),
	}).Info("transaction sent")
	return tx, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := bCtx.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		ctx.WithField("err", err).WithField("tx", tx.Hash().Hex()).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		ctx.WithField("tx", tx.Hash().Hex()).Warn("transaction reverted")
		return receipt, xerrors.Errorf("tx %s: %w", tx.Hash().Hex(), domain.ErrTxReverted)
	}
	return receipt, nil
}

func (c *clientImpl) ChainID(ctx bCtx.Ctx) (*big.Int, error) {
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.ChainID failed")
		return nil, err
	}
	return id, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	n, err := c.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.BlockNumber failed")
		return 0, err
	}
	return n, nil
}
