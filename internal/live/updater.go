// Package live simulates the dashboard's header telemetry with a cancellable random walk.
package live

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrRefreshInProgress is returned when a manual refresh is requested while one is running.
	ErrRefreshInProgress = errors.New("live: refresh already in progress")
	// ErrClosed is returned by operations on an updater whose view has been torn down.
	ErrClosed = errors.New("live: updater closed")
)

const (
	DefaultInterval     = 5 * time.Second
	DefaultRefreshDelay = 2 * time.Second
)

// State is whether the auto-refresh timer is armed.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Ticker is the repeating timer behind auto-refresh.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Options configures an Updater. Zero values fall back to the defaults.
type Options struct {
	Interval     time.Duration
	RefreshDelay time.Duration
	Rand         *rand.Rand
	Now          func() time.Time
	NewTicker    func(time.Duration) Ticker
	// OnTick runs after every applied tick, outside the updater's lock.
	OnTick func(Snapshot)
}

// Snapshot is a point-in-time copy of the header state.
type Snapshot struct {
	Metrics
	State         State `json:"state"`
	AutoRefresh   bool  `json:"autoRefresh"`
	Refreshing    bool  `json:"refreshing"`
	Notifications bool  `json:"notifications"`
}

// Updater owns the LiveMetrics of one view. All mutations are serialised by its mutex, so at
// most one tick is applied at a time.
type Updater struct {
	opts Options

	mu            sync.Mutex
	rng           *rand.Rand
	metrics       Metrics
	stop          chan struct{}
	done          chan struct{}
	refreshing    bool
	notifications bool
	closed        bool
	subs          map[chan Snapshot]struct{}
}

// NewUpdater returns an idle updater holding the seed metrics.
func NewUpdater(opts Options) *Updater {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.RefreshDelay < 0 {
		opts.RefreshDelay = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewTimeTicker
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Updater{
		opts:          opts,
		rng:           rng,
		metrics:       Seed(opts.Now()),
		notifications: true,
		subs:          make(map[chan Snapshot]struct{}),
	}
}

// Snapshot returns the current header state.
func (u *Updater) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

// State reports whether the auto-refresh timer is armed.
func (u *Updater) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stop != nil {
		return StateRunning
	}
	return StateIdle
}

// Busy reports whether a manual refresh is running.
func (u *Updater) Busy() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.refreshing
}

// SetAutoRefresh arms or cancels the repeating timer. Disabling always succeeds and returns only
// after the timer goroutine has exited, so no tick is applied afterwards.
func (u *Updater) SetAutoRefresh(enabled bool) error {
	if !enabled {
		u.disarm()
		return nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return ErrClosed
	}
	if u.stop != nil {
		return nil
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	u.stop, u.done = stop, done
	go u.run(u.opts.NewTicker(u.opts.Interval), stop, done)

	log.Debug().Dur("interval", u.opts.Interval).Msg("Live metrics auto-refresh armed")
	u.publishLocked()
	return nil
}

func (u *Updater) disarm() {
	u.mu.Lock()
	stop, done := u.stop, u.done
	u.stop, u.done = nil, nil
	if stop != nil {
		u.publishLocked()
	}
	u.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	log.Debug().Msg("Live metrics auto-refresh cancelled")
}

func (u *Updater) run(t Ticker, stop, done chan struct{}) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			u.tick(stop)
		}
	}
}

func (u *Updater) tick(stop chan struct{}) {
	u.mu.Lock()
	if u.stop != stop {
		// Disarmed while this tick was waiting for the lock.
		u.mu.Unlock()
		return
	}
	u.metrics = step(u.metrics, u.rng, u.opts.Now())
	u.publishLocked()
	snap := u.snapshotLocked()
	u.mu.Unlock()

	if u.opts.OnTick != nil {
		u.opts.OnTick(snap)
	}
}

// Refresh simulates a manual round trip: it holds the busy flag for the configured delay and
// then restamps LastUpdated. The other metrics are untouched.
func (u *Updater) Refresh(ctx context.Context) error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return ErrClosed
	}
	if u.refreshing {
		u.mu.Unlock()
		return ErrRefreshInProgress
	}
	u.refreshing = true
	u.publishLocked()
	u.mu.Unlock()

	timer := time.NewTimer(u.opts.RefreshDelay)
	defer timer.Stop()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.refreshing = false
	if err == nil {
		u.metrics.LastUpdated = u.opts.Now()
	}
	u.publishLocked()
	return err
}

// SetNotifications toggles the header's notification indicator.
func (u *Updater) SetNotifications(enabled bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notifications = enabled
	u.publishLocked()
}

// Subscribe returns a channel receiving a snapshot after every change. Slow receivers miss
// intermediate snapshots. The channel is closed by cancel or Close.
func (u *Updater) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	u.mu.Lock()
	if u.closed {
		close(ch)
		u.mu.Unlock()
		return ch, func() {}
	}
	u.subs[ch] = struct{}{}
	u.mu.Unlock()

	cancel := func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if _, ok := u.subs[ch]; ok {
			delete(u.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Close stops the timer and releases subscribers. Later enables and refreshes return ErrClosed.
func (u *Updater) Close() error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil
	}
	u.closed = true
	for ch := range u.subs {
		close(ch)
	}
	clear(u.subs)
	u.mu.Unlock()

	u.disarm()
	return nil
}

func (u *Updater) snapshotLocked() Snapshot {
	state := StateIdle
	if u.stop != nil {
		state = StateRunning
	}
	return Snapshot{
		Metrics:       u.metrics,
		State:         state,
		AutoRefresh:   u.stop != nil,
		Refreshing:    u.refreshing,
		Notifications: u.notifications,
	}
}

func (u *Updater) publishLocked() {
	snap := u.snapshotLocked()
	for ch := range u.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
