package chain

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/zkzk-trade/goapi/base/abi"
	bCtx "github.com/zkzk-trade/goapi/base/ctx"
	bEthereum "github.com/zkzk-trade/goapi/base/ethereum"
	"github.com/zkzk-trade/goapi/domain"
)

var (
	mockCtx      = bCtx.Background()
	auctionAddr  = common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	localChainId = big.NewInt(31337)
)

type fakeBackend struct {
	bEthereum.Backend

	chainId  *big.Int
	callOut  []byte
	lastCall ethereum.CallMsg
	sent     []*types.Transaction
	status   uint64
}

func (b *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return b.chainId, nil
}

func (b *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return 7, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	b.lastCall = msg
	return b.callOut, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: b.status, TxHash: hash}, nil
}

type clientSuite struct {
	suite.Suite

	backend *fakeBackend
	client  Client
}

func (s *clientSuite) SetupTest() {
	s.backend = &fakeBackend{chainId: localChainId, status: types.ReceiptStatusSuccessful}
	client, err := NewClientWithBackend(mockCtx, s.backend, &ClientCfg{ChainId: 31337, ConfirmTimeout: time.Second})
	s.Require().NoError(err)
	s.client = client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) TestChainMismatch() {
	_, err := NewClientWithBackend(mockCtx, s.backend, &ClientCfg{ChainId: 1})
	s.ErrorIs(err, domain.ErrUnsupportedChain)
}

func (s *clientSuite) TestCallSetsFrom() {
	type bidder struct {
		Bidder    common.Address
		Price     *big.Int
		Timestamp *big.Int
		Refunded  bool
		Won       bool
	}
	out, err := baseabi.AuctionABI.Methods["getBidders"].Outputs.Pack([]bidder{
		{common.HexToAddress("0x2"), big.NewInt(10), big.NewInt(1700000000), false, false},
	})
	s.Require().NoError(err)
	s.backend.callOut = out

	from := common.HexToAddress("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	res, err := s.client.Call(mockCtx, from, auctionAddr, baseabi.AuctionABI, "getBidders", big.NewInt(3))
	s.NoError(err)
	s.Len(res, 1)
	s.Equal(from, s.backend.lastCall.From)
	s.Equal(auctionAddr, *s.backend.lastCall.To)
	s.Equal(baseabi.AuctionABI.Methods["getBidders"].ID, s.backend.lastCall.Data[:4])
}

func (s *clientSuite) TestCallPackFailed() {
	_, err := s.client.Call(mockCtx, common.Address{}, auctionAddr, baseabi.AuctionABI, "getBidders", "not a number")
	s.Error(err)
}

func (s *clientSuite) transactOpts() *bind.TransactOpts {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, localChainId)
	s.Require().NoError(err)
	opts.GasPrice = big.NewInt(1)
	opts.GasLimit = 100000
	opts.Nonce = big.NewInt(0)
	return opts
}

func (s *clientSuite) TestTransactAndWaitMined() {
	opts := s.transactOpts()
	opts.Value = big.NewInt(5)

	tx, err := s.client.Transact(mockCtx, opts, auctionAddr, baseabi.AuctionABI, "placeBid", big.NewInt(3))
	s.Require().NoError(err)
	s.Len(s.backend.sent, 1)
	s.Equal(big.NewInt(5), tx.Value())
	s.Equal(auctionAddr, *tx.To())
	s.Equal(baseabi.AuctionABI.Methods["placeBid"].ID, tx.Data()[:4])

	receipt, err := s.client.WaitMined(mockCtx, tx)
	s.NoError(err)
	s.Equal(tx.Hash(), receipt.TxHash)
}

func (s *clientSuite) TestWaitMinedReverted() {
	s.backend.status = types.ReceiptStatusFailed
	tx, err := s.client.Transact(mockCtx, s.transactOpts(), auctionAddr, baseabi.AuctionABI, "claimPrize", big.NewInt(3), big.NewInt(0))
	s.Require().NoError(err)

	_, err = s.client.WaitMined(mockCtx, tx)
	s.ErrorIs(err, domain.ErrTxReverted)
}

func (s *clientSuite) TestChainIDAndBlockNumber() {
	id, err := s.client.ChainID(mockCtx)
	s.NoError(err)
	s.Equal(localChainId, id)

	n, err := s.client.BlockNumber(mockCtx)
	s.NoError(err)
	s.Equal(uint64(7), n)
}
