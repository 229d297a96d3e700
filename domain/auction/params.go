package auction

type CreateParams struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required,ether"`
}

// Domain comes from the request path only
type UpdatePriceParams struct {
	Domain int64  `json:"-" param:"domain"`
	Price  string `json:"price" validate:"required,ether"`
}

// OfferParams lists an item; the bidding window is sec+min+hour+day, summed by the contract
type OfferParams struct {
	Domain   int64 `json:"-" param:"domain"`
	Biddable bool  `json:"biddable"`
	Sec      int64 `json:"sec" validate:"gte=0"`
	Min      int64 `json:"min" validate:"gte=0"`
	Hour     int64 `json:"hour" validate:"gte=0"`
	Day      int64 `json:"day" validate:"gte=0"`
}

// TradeParams is used for buying and bidding, Price is the value sent along
type TradeParams struct {
	Domain int64  `json:"-" param:"domain"`
	Price  string `json:"price" validate:"required,ether"`
}

type ClaimParams struct {
	Domain int64 `json:"-" param:"domain"`
	Id     int64 `json:"id" validate:"gte=0"`
}
