package openwb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

const defaultPollInterval = 30 * time.Second

// Listener receives the latest snapshot plus a success flag after every poll
// cycle. On failure the snapshot is the previous successful one (possibly nil)
// and ok is false, meaning the data may be stale.
type Listener func(snapshot model.Snapshot, ok bool)

// Poller issues one fetch per cycle and retains the latest successful
// snapshot. There is exactly one writer; publication is atomic replacement so
// listeners never observe a partially updated snapshot.
type Poller struct {
	client   *Client
	interval time.Duration
	logger   *zap.Logger

	mu        sync.RWMutex
	latest    model.Snapshot
	lastOK    bool
	lastCycle time.Time
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

func NewPoller(client *Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		client:   client,
		interval: interval,
		logger:   zap.L(),
	}
}

// Subscribe registers a listener and returns its unregister function.
// Listeners are invoked synchronously, in registration order, after each
// cycle.
func (p *Poller) Subscribe(l Listener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners = append(p.listeners, subscription{id: id, fn: l})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.listeners {
			if sub.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// Latest returns the most recent successful snapshot and whether the last
// cycle succeeded. ok == false means the snapshot is carried over.
func (p *Poller) Latest() (model.Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.lastOK
}

func (p *Poller) LastCycle() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastCycle
}

// Run polls once immediately, then on a fixed schedule until the context is
// cancelled. Cycles are scheduled cycle-to-cycle; an overdue cycle is skipped
// rather than queued, so fetches for the same controller never overlap.
func (p *Poller) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", p.interval), func() {
		p.poll(ctx)
	}); err != nil {
		return err
	}

	p.poll(ctx)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

func (p *Poller) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	fetchCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	snapshot, err := p.client.Fetch(fetchCtx)

	p.mu.Lock()
	p.lastCycle = time.Now()
	if err != nil {
		p.lastOK = false
		snapshot = p.latest
	} else {
		p.lastOK = true
		p.latest = snapshot
	}
	ok := p.lastOK
	listeners := make([]subscription, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("poll cycle failed", zap.Error(err))
	} else {
		p.logger.Debug("poll cycle complete", zap.Int("keys", len(snapshot)))
	}

	for _, sub := range listeners {
		sub.fn(snapshot, ok)
	}
}
