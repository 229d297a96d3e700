package wallet

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/event"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/goroutine"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/wallet"
	"golang.org/x/xerrors"
)

var (
	scryptN = keystore.StandardScryptN
	scryptP = keystore.StandardScryptP
)

// Keystore signs with the accounts of a go-ethereum keystore directory.
// Accounts stay unauthorized until RequestAccounts unlocks them with the passphrase.
type Keystore struct {
	*Emitter

	ks         *keystore.KeyStore
	passphrase string

	mu         sync.RWMutex
	authorized map[domain.Address]accounts.Account

	sub  event.Subscription
	done chan struct{}
}

func NewKeystore(dir, passphrase string) *Keystore {
	k := &Keystore{
		Emitter:    NewEmitter(),
		ks:         keystore.NewKeyStore(dir, scryptN, scryptP),
		passphrase: passphrase,
		authorized: map[domain.Address]accounts.Account{},
		done:       make(chan struct{}),
	}
	k.watch()
	return k
}

// watch relays keystore file arrivals and drops as accountsChanged
func (k *Keystore) watch() {
	events := make(chan accounts.WalletEvent, 16)
	k.sub = k.ks.Subscribe(events)
	goroutine.RecoverableGo(func() {
		for {
			select {
			case ev := <-events:
				if ev.Kind == accounts.WalletDropped {
					k.drop(ev.Wallet.Accounts())
				}
				k.mu.RLock()
				n := len(k.authorized)
				k.mu.RUnlock()
				if n > 0 || ev.Kind == accounts.WalletDropped {
					k.Emit(wallet.EventAccountsChanged, k.list())
				}
			case <-k.sub.Err():
				return
			case <-k.done:
				return
			}
		}
	}, goroutine.WithName("keystoreWatch"))
}

func (k *Keystore) drop(accs []accounts.Account) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, acc := range accs {
		delete(k.authorized, domain.AddressFromCommon(acc.Address))
	}
}

func (k *Keystore) list() []domain.Address {
	k.mu.RLock()
	defer k.mu.RUnlock()
	res := []domain.Address{}
	for _, acc := range k.ks.Accounts() {
		addr := domain.AddressFromCommon(acc.Address)
		if _, ok := k.authorized[addr]; ok {
			res = append(res, addr)
		}
	}
	return res
}

func (k *Keystore) Accounts(c ctx.Ctx) ([]domain.Address, error) {
	return k.list(), nil
}

func (k *Keystore) RequestAccounts(c ctx.Ctx) ([]domain.Address, error) {
	accs := k.ks.Accounts()
	if len(accs) == 0 {
		c.Warn("keystore has no account")
		return []domain.Address{}, nil
	}
	for _, acc := range accs {
		if err := k.ks.Unlock(acc, k.passphrase); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"account": acc.Address.Hex(),
			}).Error("ks.Unlock failed")
			return nil, err
		}
		k.mu.Lock()
		k.authorized[domain.AddressFromCommon(acc.Address)] = acc
		k.mu.Unlock()
	}
	res := k.list()
	k.Emit(wallet.EventAccountsChanged, res)
	return res, nil
}

func (k *Keystore) Transactor(c ctx.Ctx, account domain.Address, chainId *big.Int) (*bind.TransactOpts, error) {
	k.mu.RLock()
	acc, ok := k.authorized[account.ToLower()]
	k.mu.RUnlock()
	if !ok {
		return nil, xerrors.Errorf("account %s: %w", account, domain.ErrNoConnectedAccount)
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(k.ks, acc, chainId)
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyStoreTransactorWithChainID failed")
		return nil, err
	}
	opts.Context = c
	return opts, nil
}

// Import adds a raw key to the keystore, encrypted with the passphrase
func (k *Keystore) Import(c ctx.Ctx, hexKey string) (domain.Address, error) {
	key, err := parseKey(hexKey)
	if err != nil {
		return "", err
	}
	acc, err := k.ks.ImportECDSA(key, k.passphrase)
	if err != nil {
		c.WithField("err", err).Error("ks.ImportECDSA failed")
		return "", err
	}
	return domain.AddressFromCommon(acc.Address), nil
}

func (k *Keystore) Close() error {
	close(k.done)
	k.sub.Unsubscribe()
	return nil
}
