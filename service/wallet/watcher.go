package wallet

import (
	"math/big"
	"time"

	"github.com/zkzk-trade/goapi/base/backoff"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/goroutine"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/domain/wallet"
)

const defaultWatchInterval = 10 * time.Second

type ChainIDReader interface {
	ChainID(c ctx.Ctx) (*big.Int, error)
}

type EventEmitter interface {
	Emit(event wallet.Event, payload interface{})
}

// Watcher raises chainChanged when the node starts answering with another chain id
type Watcher struct {
	chain    ChainIDReader
	emitter  EventEmitter
	interval time.Duration
	backoff  *backoff.Backoff

	current *big.Int
}

func NewWatcher(chain ChainIDReader, emitter EventEmitter, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &Watcher{
		chain:    chain,
		emitter:  emitter,
		interval: interval,
		backoff:  backoff.NewExponential(interval, 8*interval),
	}
}

// Start polls until c is done
func (w *Watcher) Start(c ctx.Ctx) {
	goroutine.RecoverableGo(func() {
		w.loop(c)
	}, goroutine.WithName("walletWatcher"), goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
		c.WithField("panic", p).Error("wallet watcher stopped")
	}))
}

func (w *Watcher) loop(c ctx.Ctx) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if err := w.poll(c); err != nil {
			if berr := w.backoff.Backoff(c); berr != nil {
				return
			}
			continue
		}
		w.backoff.Reset()

		select {
		case <-c.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll reads the chain id once, the first answer is the baseline
func (w *Watcher) poll(c ctx.Ctx) error {
	id, err := w.chain.ChainID(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"attempt": w.backoff.Attempts(),
		}).Warn("chain.ChainID failed")
		return err
	}
	if w.current != nil && w.current.Cmp(id) != 0 {
		c.WithFields(log.Fields{
			"from": w.current,
			"to":   id,
		}).Info("chain changed")
		w.emitter.Emit(wallet.EventChainChanged, id)
	}
	w.current = id
	return nil
}
