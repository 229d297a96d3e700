package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain"
	"golang.org/x/xerrors"
)

// PrivateKey signs with one operator supplied key, always authorized
type PrivateKey struct {
	*Emitter

	key     *ecdsa.PrivateKey
	account domain.Address
}

func parseKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", domain.ErrBadParamInput)
	}
	return key, nil
}

func NewPrivateKey(hexKey string) (*PrivateKey, error) {
	key, err := parseKey(hexKey)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromECDSA(key), nil
}

func NewPrivateKeyFromECDSA(key *ecdsa.PrivateKey) *PrivateKey {
	return &PrivateKey{
		Emitter: NewEmitter(),
		key:     key,
		account: domain.AddressFromCommon(crypto.PubkeyToAddress(key.PublicKey)),
	}
}

func (p *PrivateKey) Accounts(c ctx.Ctx) ([]domain.Address, error) {
	return []domain.Address{p.account}, nil
}

func (p *PrivateKey) RequestAccounts(c ctx.Ctx) ([]domain.Address, error) {
	return []domain.Address{p.account}, nil
}

func (p *PrivateKey) Transactor(c ctx.Ctx, account domain.Address, chainId *big.Int) (*bind.TransactOpts, error) {
	if !p.account.Equals(account) {
		return nil, xerrors.Errorf("account %s: %w", account, domain.ErrNoConnectedAccount)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainId)
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, err
	}
	opts.Context = c
	return opts, nil
}

func (p *PrivateKey) Close() error {
	return nil
}
