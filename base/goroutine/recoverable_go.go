package goroutine

import (
	"runtime/debug"

	"github.com/zkzk-trade/goapi/base/log"
)

type PanicEvent struct {
	Name  string
	Panic interface{}
	Stack []byte
}

type options struct {
	name           string
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

// WithName labels the goroutine in the panic log
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithAfterEnded runs f once the goroutine is done, panicked or not
func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel delivers the panic if f panics
// and is closed when f returns normally.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{name: "anonymous"}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := debug.Stack()
			log.Log().WithFields(log.Fields{
				"goroutine": o.name,
				"err":       p,
				"stack":     string(stack),
			}).Error("panic")

			if o.afterRecovered != nil {
				o.afterRecovered(p, stack)
			}
			panicChan <- &PanicEvent{o.name, p, stack}
		}()

		f()
	}()

	return panicChan
}
