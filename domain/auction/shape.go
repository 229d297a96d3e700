package auction

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/zkzk-trade/goapi/domain"
	"golang.org/x/xerrors"
)

// StructuredAuction normalizes one contract tuple
func StructuredAuction(raw RawAuction) (*Auction, error) {
	id, err := ToInt64(raw.Domain)
	if err != nil {
		return nil, xerrors.Errorf("domain: %w", err)
	}
	duration, err := SecondsToMillis(raw.Duration)
	if err != nil {
		return nil, xerrors.Errorf("duration of domain %d: %w", id, err)
	}
	return &Auction{
		Domain:      id,
		Owner:       domain.AddressFromCommon(raw.Owner),
		Seller:      domain.AddressFromCommon(raw.Seller),
		Winner:      domain.AddressFromCommon(raw.Winner),
		Name:        raw.Name,
		Description: raw.Description,
		Duration:    duration,
		Image:       raw.Image,
		Price:       FormatEther(raw.Price),
		Biddable:    raw.Biddable,
		Sold:        raw.Sold,
		Live:        raw.Live,
	}, nil
}

// StructuredAuctions normalizes contract tuples. The contract lists oldest first,
// the result is newest first.
func StructuredAuctions(raws []RawAuction) ([]*Auction, error) {
	res := make([]*Auction, len(raws))
	for i, raw := range raws {
		a, err := StructuredAuction(raw)
		if err != nil {
			return nil, err
		}
		res[len(raws)-1-i] = a
	}
	return res, nil
}

// StructuredBidders normalizes bid tuples, highest price first. Equal prices keep input order.
func StructuredBidders(raws []RawBidder) ([]*Bidder, error) {
	res := make([]*Bidder, 0, len(raws))
	prices := make(map[*Bidder]decimal.Decimal, len(raws))
	for _, raw := range raws {
		ts, err := SecondsToMillis(raw.Timestamp)
		if err != nil {
			return nil, xerrors.Errorf("timestamp: %w", err)
		}
		b := &Bidder{
			Timestamp: ts,
			Bidder:    domain.AddressFromCommon(raw.Bidder),
			Price:     FormatEther(raw.Price),
			Refunded:  raw.Refunded,
			Won:       raw.Won,
		}
		if raw.Price != nil {
			prices[b] = decimal.NewFromBigInt(raw.Price, -Decimals)
		} else {
			prices[b] = decimal.Zero
		}
		res = append(res, b)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return prices[res[i]].GreaterThan(prices[res[j]])
	})
	return res, nil
}
