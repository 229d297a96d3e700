package ens

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type ensSuite struct {
	suite.Suite

	calls int
	names map[common.Address]string
	im    *impl
}

func (s *ensSuite) SetupTest() {
	s.calls = 0
	s.names = map[common.Address]string{
		common.HexToAddress("0x1"): "zkzk.eth",
	}
	s.im = newWithLookup(func(address common.Address) (string, error) {
		s.calls++
		if address == common.HexToAddress("0xdead") {
			return "", errors.New("connection refused")
		}
		if name, ok := s.names[address]; ok {
			return name, nil
		}
		return "", errors.New("not a resolver")
	}, primitive.NewPrimitive("ens", 1))
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestReverseResolve() {
	addr := domain.Address("0x0000000000000000000000000000000000000001")
	name, err := s.im.ReverseResolve(mockCtx, addr)
	s.NoError(err)
	s.Equal("zkzk.eth", name)

	// cached
	name, err = s.im.ReverseResolve(mockCtx, addr)
	s.NoError(err)
	s.Equal("zkzk.eth", name)
	s.Equal(1, s.calls)
}

func (s *ensSuite) TestNoName() {
	name, err := s.im.ReverseResolve(mockCtx, domain.Address("0x0000000000000000000000000000000000000002"))
	s.NoError(err)
	s.Equal("", name)
}

func (s *ensSuite) TestLookupFailed() {
	_, err := s.im.ReverseResolve(mockCtx, domain.Address("0x000000000000000000000000000000000000dead"))
	s.Error(err)
}

func (s *ensSuite) TestDisabled() {
	e, err := New(mockCtx, "", nil)
	s.NoError(err)
	name, err := e.ReverseResolve(mockCtx, domain.Address("0x1"))
	s.NoError(err)
	s.Equal("", name)
}
