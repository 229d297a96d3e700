package auction

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkzk-trade/goapi/domain"
)

// RawAuction mirrors the auction tuple returned by the contract.
// Field order follows the ABI components so abi.ConvertType can fill it.
type RawAuction struct {
	Domain      *big.Int
	Owner       common.Address
	Seller      common.Address
	Winner      common.Address
	Name        string
	Description string
	Duration    *big.Int
	Image       string
	Price       *big.Int
	Biddable    bool
	Sold        bool
	Live        bool
}

// RawBidder mirrors the bidder tuple returned by the contract
type RawBidder struct {
	Bidder    common.Address
	Price     *big.Int
	Timestamp *big.Int
	Refunded  bool
	Won       bool
}

type Auction struct {
	Domain      int64          `json:"domain"`
	Owner       domain.Address `json:"owner"`
	Seller      domain.Address `json:"seller"`
	Winner      domain.Address `json:"winner"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Duration    int64          `json:"duration"` // end time, ms since epoch
	Image       string         `json:"image"`
	Price       string         `json:"price"` // decimal, native currency
	Biddable    bool           `json:"biddable"`
	Sold        bool           `json:"sold"`
	Live        bool           `json:"live"`
}

// EndsAt returns the end of the bidding window
func (a *Auction) EndsAt() time.Time {
	return time.UnixMilli(a.Duration)
}

// IsLive reports whether the auction is flagged live and its window has not elapsed yet
func (a *Auction) IsLive(now time.Time) bool {
	return a.Live && a.Duration > now.UnixMilli()
}

// HasEnded reports whether the window elapsed, whatever the live flag says
func (a *Auction) HasEnded(now time.Time) bool {
	return now.UnixMilli() > a.Duration
}

type Bidder struct {
	Timestamp int64          `json:"timestamp"` // ms since epoch
	Bidder    domain.Address `json:"bidder"`
	Price     string         `json:"price"`
	Refunded  bool           `json:"refunded"`
	Won       bool           `json:"won"`
}
