package toast

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/base/state"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/keys"
	"github.com/zkzk-trade/goapi/domain/toast"
	"github.com/zkzk-trade/goapi/service/cache"
	"github.com/zkzk-trade/goapi/service/cache/provider"
	"golang.org/x/xerrors"
)

const scheduleTimeout = 3 * time.Second

type Config struct {
	Ttl     time.Duration
	Workers int
}

// Tracker implements toast.Tracker on a worker pool
type Tracker struct {
	pool  *goroutines.Pool
	cache cache.Service
	store *state.Store
	now   func() time.Time
}

// New keeps toasts in cacheProvider for cfg.Ttl and mirrors every change into store
func New(cfg Config, cacheProvider provider.Provider, store *state.Store) *Tracker {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	return &Tracker{
		pool:  goroutines.NewPool(workers, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(2)),
		cache: cache.New(cache.ServiceConfig{Ttl: cfg.Ttl, Pfx: keys.PfxToast, Cache: cacheProvider}),
		store: store,
		now:   time.Now,
	}
}

func (im *Tracker) Promise(c ctx.Ctx, msgs toast.Messages, fn func(c ctx.Ctx) error) (*toast.Toast, error) {
	now := im.now().UnixMilli()
	t := &toast.Toast{
		Id:        uuid.NewString(),
		Status:    toast.StatusPending,
		Message:   msgs.Pending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	im.save(c, t)

	bg := ctx.WithValue(ctx.Detach(c), "toast", t.Id)
	err := im.pool.ScheduleWithTimeout(scheduleTimeout, func() {
		im.settle(bg, *t, msgs, fn(bg))
	})
	if err != nil {
		c.WithField("err", err).Error("pool.ScheduleWithTimeout failed")
		im.settle(c, *t, msgs, err)
		return nil, xerrors.Errorf("schedule: %w", err)
	}
	return t, nil
}

func (im *Tracker) settle(c ctx.Ctx, t toast.Toast, msgs toast.Messages, err error) {
	t.UpdatedAt = im.now().UnixMilli()
	if err != nil {
		t.Status = toast.StatusError
		t.Message = msgs.Error
		t.Err = err.Error()
		c.WithField("err", err).Warn("operation failed")
	} else {
		t.Status = toast.StatusSuccess
		t.Message = msgs.Success
	}
	im.save(c, &t)
}

func (im *Tracker) save(c ctx.Ctx, t *toast.Toast) {
	if err := im.cache.Set(c, t.Id, t); err != nil {
		c.WithFields(log.Fields{"err": err, "toast": t.Id}).Error("cache.Set failed")
	}
	state.Set(im.store, toast.KeyToast, t)
}

func (im *Tracker) Get(c ctx.Ctx, id string) (*toast.Toast, error) {
	t := &toast.Toast{}
	if err := im.cache.Get(c, id, t); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return t, nil
}

// Close releases the workers
func (im *Tracker) Close() {
	im.pool.Release()
}
