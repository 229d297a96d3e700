package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
)

type Event string

const (
	EventChainChanged    Event = "chainChanged"
	EventAccountsChanged Event = "accountsChanged"
)

// Handler receives the payload of an event: the new chain id (*big.Int) for chainChanged,
// the current accounts ([]domain.Address) for accountsChanged.
type Handler func(payload interface{})

// Provider is the signing wallet the gateway acts through
type Provider interface {
	// Accounts lists accounts already authorized, it never prompts for credentials
	Accounts(c ctx.Ctx) ([]domain.Address, error)
	// RequestAccounts authorizes (unlocks) the wallet accounts and lists them
	RequestAccounts(c ctx.Ctx) ([]domain.Address, error)
	// Transactor returns signing options bound to account
	Transactor(c ctx.Ctx, account domain.Address, chainId *big.Int) (*bind.TransactOpts, error)
	// On registers a handler for wallet events
	On(event Event, h Handler)
}
