package wallet

import (
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/domain/wallet"
)

type Config struct {
	PrivateKey  string
	KeystoreDir string
	Passphrase  string
}

// Provider is a signing wallet that also raises its own events and owns resources
type Provider interface {
	wallet.Provider
	EventEmitter
	Close() error
}

// NewFromConfig prefers a raw private key over a keystore directory.
// It returns a nil provider when neither is configured.
func NewFromConfig(c ctx.Ctx, cfg Config) (Provider, error) {
	switch {
	case cfg.PrivateKey != "":
		p, err := NewPrivateKey(cfg.PrivateKey)
		if err != nil {
			c.WithField("err", err).Error("NewPrivateKey failed")
			return nil, err
		}
		c.WithField("account", p.account).Info("wallet: private key")
		return p, nil
	case cfg.KeystoreDir != "":
		c.WithField("dir", cfg.KeystoreDir).Info("wallet: keystore")
		return NewKeystore(cfg.KeystoreDir, cfg.Passphrase), nil
	}
	c.Warn("wallet: no provider configured")
	return nil, nil
}
