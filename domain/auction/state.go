package auction

import (
	"github.com/zkzk-trade/goapi/base/state"
	"github.com/zkzk-trade/goapi/domain"
)

// Modal visibility values, mirrored from the listing UI classes
const (
	ModalOpen   = "scale-100"
	ModalClosed = "scale-0"
)

var (
	KeyConnectedAccount = state.NewKey[domain.Address]("connectedAccount")
	KeyAuction          = state.NewKey[*Auction]("auction")
	KeyAuctions         = state.NewKey[[]*Auction]("auctions")
	KeyBidders          = state.NewKey[[]*Bidder]("bidders")
	KeyCollections      = state.NewKey[[]*Auction]("collections")
	KeyOfferModal       = state.NewKey[string]("offerModal")
	KeyBidBox           = state.NewKey[string]("bidBox")
	KeyPriceModal       = state.NewKey[string]("priceModal")
	KeyPrompt           = state.NewKey[string]("prompt")
)

// ModalKey resolves a modal by its state name
func ModalKey(name string) (state.Key[string], bool) {
	switch name {
	case KeyOfferModal.Name():
		return KeyOfferModal, true
	case KeyBidBox.Name():
		return KeyBidBox, true
	case KeyPriceModal.Name():
		return KeyPriceModal, true
	}
	return state.Key[string]{}, false
}
