package wallet

import (
	"sync"

	"github.com/zkzk-trade/goapi/domain/wallet"
)

// Emitter keeps wallet event handlers, handlers run in registration order
type Emitter struct {
	mu       sync.RWMutex
	handlers map[wallet.Event][]wallet.Handler
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: map[wallet.Event][]wallet.Handler{}}
}

func (e *Emitter) On(event wallet.Event, h wallet.Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[event] = append(e.handlers[event], h)
}

func (e *Emitter) Emit(event wallet.Event, payload interface{}) {
	e.mu.RLock()
	hs := make([]wallet.Handler, len(e.handlers[event]))
	copy(hs, e.handlers[event])
	e.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}
