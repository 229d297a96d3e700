package toast

import (
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/state"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Messages are the texts shown while an operation runs and once it settles
type Messages struct {
	Pending string
	Success string
	Error   string
}

// Toast is a transient notification tracking one operation
type Toast struct {
	Id        string `json:"id"`
	Status    Status `json:"status"`
	Message   string `json:"message"`
	Err       string `json:"error,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// KeyToast holds the last toast that changed
var KeyToast = state.NewKey[*Toast]("toast")

var (
	MsgCreate = Messages{"Minting in progress...", "Minted successfully, will reflect within 30sec 👌", "Encountered error 🤯"}
	MsgPrice  = Messages{"Processing...", "Price updated, will reflect within 30sec 👌", "Encountered error 🤯"}
	MsgOffer  = Messages{"Processing...", "Listed on the market, will reflect within 30sec 👌", "Encountered error 🤯"}
	MsgBuy    = Messages{"Processing...", "Purchase successful, will reflect within 30sec 👌", "Encountered error 🤯"}
	MsgBid    = Messages{"Processing...", "Bid placed successfully 👌", "Encountered error 🤯"}
	MsgClaim  = Messages{"Processing...", "Prize claimed successfully 👌", "Encountered error 🤯"}
)

// Tracker runs operations in the background and reports them as toasts
type Tracker interface {
	// Promise schedules fn and returns its pending toast right away
	Promise(c ctx.Ctx, msgs Messages, fn func(c ctx.Ctx) error) (*Toast, error)
	// Get returns a toast until it expires, then domain.ErrNotFound
	Get(c ctx.Ctx, id string) (*Toast, error)
}
