package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/service/cache/provider/primitive"
	"github.com/zkzk-trade/goapi/service/chain/mocks"
)

func TestPingChain(t *testing.T) {
	req := require.New(t)
	client := &mocks.Client{}
	client.On("BlockNumber", mock.Anything).Return(uint64(7), nil).Once()
	client.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("dial tcp")).Once()

	repo := New(client, primitive.NewPrimitive("hc", 1))
	n, err := repo.PingChain(ctx.Background())
	req.NoError(err)
	req.Equal(uint64(7), n)

	_, err = repo.PingChain(ctx.Background())
	req.Error(err)
	client.AssertExpectations(t)
}

func TestPingCache(t *testing.T) {
	repo := New(&mocks.Client{}, primitive.NewPrimitive("hc", 1))
	require.NoError(t, repo.PingCache(ctx.Background()))
}
