package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/zkzk-trade/goapi/base/abi"
	bCtx "github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/auction"
	mChain "github.com/zkzk-trade/goapi/service/chain/mocks"
)

var (
	mockCtx     = bCtx.Background()
	auctionAddr = common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	account     = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
)

type auctionSuite struct {
	suite.Suite

	chain    *mChain.Client
	contract auction.Contract
}

func (s *auctionSuite) SetupTest() {
	s.chain = &mChain.Client{}
	s.contract = NewAuction(s.chain, auctionAddr)
}

func (s *auctionSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

// unpacked runs values through the abi codec so the mock answers like a node would
func (s *auctionSuite) unpacked(method string, v interface{}) []interface{} {
	data, err := baseabi.AuctionABI.Methods[method].Outputs.Pack(v)
	s.Require().NoError(err)
	out, err := baseabi.AuctionABI.Unpack(method, data)
	s.Require().NoError(err)
	return out
}

func rawAuction(id int64) auction.RawAuction {
	return auction.RawAuction{
		Domain:      big.NewInt(id),
		Owner:       common.HexToAddress("0x1"),
		Seller:      common.HexToAddress("0x2"),
		Winner:      common.Address{},
		Name:        "zkzk.eth",
		Description: "short and sweet",
		Duration:    big.NewInt(1700000000),
		Image:       "ipfs://cid",
		Price:       big.NewInt(2e18),
		Biddable:    true,
		Sold:        false,
		Live:        true,
	}
}

func (s *auctionSuite) TestGetLiveAuctions() {
	raws := []auction.RawAuction{rawAuction(1), rawAuction(2)}
	s.chain.On("Call", mockCtx, account.ToCommon(), auctionAddr, mock.Anything, "getLiveAuctions").
		Return(s.unpacked("getLiveAuctions", raws), nil).Once()

	res, err := s.contract.GetLiveAuctions(mockCtx, account)
	s.NoError(err)
	s.Equal(raws, res)
}

func (s *auctionSuite) TestGetMyAuctions() {
	s.chain.On("Call", mockCtx, account.ToCommon(), auctionAddr, mock.Anything, "getMyAuctions").
		Return(s.unpacked("getMyAuctions", []auction.RawAuction{}), nil).Once()

	res, err := s.contract.GetMyAuctions(mockCtx, account)
	s.NoError(err)
	s.Empty(res)
}

func (s *auctionSuite) TestGetAuction() {
	raw := rawAuction(3)
	s.chain.On("Call", mockCtx, account.ToCommon(), auctionAddr, mock.Anything, "getAuction", big.NewInt(3)).
		Return(s.unpacked("getAuction", raw), nil).Once()

	res, err := s.contract.GetAuction(mockCtx, account, big.NewInt(3))
	s.NoError(err)
	s.Equal(&raw, res)
}

func (s *auctionSuite) TestGetBidders() {
	raws := []auction.RawBidder{
		{Bidder: common.HexToAddress("0x3"), Price: big.NewInt(1e18), Timestamp: big.NewInt(1700000000), Refunded: true},
		{Bidder: common.HexToAddress("0x4"), Price: big.NewInt(2e18), Timestamp: big.NewInt(1700000100), Won: true},
	}
	s.chain.On("Call", mockCtx, account.ToCommon(), auctionAddr, mock.Anything, "getBidders", big.NewInt(3)).
		Return(s.unpacked("getBidders", raws), nil).Once()

	res, err := s.contract.GetBidders(mockCtx, account, big.NewInt(3))
	s.NoError(err)
	s.Equal(raws, res)
}

func (s *auctionSuite) TestCallFailed() {
	cause := errors.New("execution reverted")
	s.chain.On("Call", mockCtx, account.ToCommon(), auctionAddr, mock.Anything, "getLiveAuctions").
		Return(nil, cause).Once()

	_, err := s.contract.GetLiveAuctions(mockCtx, account)
	s.ErrorIs(err, domain.ErrRemoteCall)
	s.ErrorIs(err, cause)

	var remote *domain.RemoteError
	s.True(errors.As(err, &remote))
	s.Equal("getLiveAuctions", remote.Method)
}

func (s *auctionSuite) TestTransactions() {
	opts := &bind.TransactOpts{From: account.ToCommon()}
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	id := big.NewInt(3)
	price := big.NewInt(2e18)

	cases := []struct {
		method string
		params []interface{}
		run    func() (*types.Transaction, error)
	}{
		{"createAuction", []interface{}{"zkzk.eth", "desc", price}, func() (*types.Transaction, error) {
			return s.contract.CreateAuction(mockCtx, opts, "zkzk.eth", "desc", price)
		}},
		{"changePrice", []interface{}{id, price}, func() (*types.Transaction, error) {
			return s.contract.ChangePrice(mockCtx, opts, id, price)
		}},
		{"offerAuction", []interface{}{id, true, big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}, func() (*types.Transaction, error) {
			return s.contract.OfferAuction(mockCtx, opts, id, true, big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
		}},
		{"buyAuctionedItem", []interface{}{id}, func() (*types.Transaction, error) {
			return s.contract.BuyAuctionedItem(mockCtx, opts, id)
		}},
		{"placeBid", []interface{}{id}, func() (*types.Transaction, error) {
			return s.contract.PlaceBid(mockCtx, opts, id)
		}},
		{"claimPrize", []interface{}{id, big.NewInt(0)}, func() (*types.Transaction, error) {
			return s.contract.ClaimPrize(mockCtx, opts, id, big.NewInt(0))
		}},
	}
	for _, c := range cases {
		args := append([]interface{}{mockCtx, opts, auctionAddr, mock.Anything, c.method}, c.params...)
		s.chain.On("Transact", args...).Return(tx, nil).Once()

		res, err := c.run()
		s.NoError(err, c.method)
		s.Equal(tx, res, c.method)
	}
}

func (s *auctionSuite) TestTransactFailed() {
	opts := &bind.TransactOpts{From: account.ToCommon()}
	s.chain.On("Transact", mockCtx, opts, auctionAddr, mock.Anything, "placeBid", big.NewInt(3)).
		Return(nil, errors.New("insufficient funds")).Once()

	_, err := s.contract.PlaceBid(mockCtx, opts, big.NewInt(3))
	s.ErrorIs(err, domain.ErrRemoteCall)
}

func (s *auctionSuite) TestWaitMined() {
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	s.chain.On("WaitMined", mockCtx, tx).Return(receipt, nil).Once()
	res, err := s.contract.WaitMined(mockCtx, tx)
	s.NoError(err)
	s.Equal(receipt, res)

	s.chain.On("WaitMined", mockCtx, tx).Return(nil, domain.ErrTxReverted).Once()
	_, err = s.contract.WaitMined(mockCtx, tx)
	s.ErrorIs(err, domain.ErrTxReverted)
	s.NotErrorIs(err, domain.ErrRemoteCall)

	s.chain.On("WaitMined", mockCtx, tx).Return(nil, errors.New("context deadline exceeded")).Once()
	_, err = s.contract.WaitMined(mockCtx, tx)
	s.ErrorIs(err, domain.ErrRemoteCall)
}
