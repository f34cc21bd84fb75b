package live

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{c: make(chan time.Time, 1)}
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fire delivers a tick if the buffer has room. It never blocks.
func (f *fakeTicker) fire() {
	select {
	case f.c <- time.Now():
	default:
	}
}

func newTestUpdater(t *testing.T, ft *fakeTicker, seed int64) *Updater {
	t.Helper()
	u := NewUpdater(Options{
		Rand:         rand.New(rand.NewSource(seed)),
		RefreshDelay: 10 * time.Millisecond,
		NewTicker:    func(time.Duration) Ticker { return ft },
	})
	t.Cleanup(func() { _ = u.Close() })
	return u
}

func nextSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func TestSeed(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := Seed(now)
	assert.Equal(t, 24567, m.TotalCrimes)
	assert.Equal(t, 45, m.AreasMonitored)
	assert.Equal(t, 28, m.CrimeTypesTracked)
	assert.Equal(t, 7.2, m.RiskScore)
	assert.Equal(t, -5.2, m.TrendPercent)
	assert.Equal(t, now, m.LastUpdated)
}

func TestStepBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := Seed(time.Now())
	for i := 0; i < 10000; i++ {
		prev := m
		m = step(m, rng, time.Now())

		delta := m.TotalCrimes - prev.TotalCrimes
		require.GreaterOrEqual(t, delta, -5)
		require.LessOrEqual(t, delta, 4)
		require.GreaterOrEqual(t, m.RiskScore, 0.0)
		require.LessOrEqual(t, m.RiskScore, MaxRiskScore)
		require.Less(t, m.TrendPercent-prev.TrendPercent, 1.0)
		require.GreaterOrEqual(t, m.TrendPercent-prev.TrendPercent, -1.0)
	}
}

func TestStepClampsRisk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Seed(time.Now())
	m.RiskScore = MaxRiskScore
	for i := 0; i < 100; i++ {
		m = step(m, rng, time.Now())
		require.LessOrEqual(t, m.RiskScore, MaxRiskScore)
	}
	m.RiskScore = 0
	for i := 0; i < 100; i++ {
		m = step(m, rng, time.Now())
		require.GreaterOrEqual(t, m.RiskScore, 0.0)
	}
}

func TestUpdater_ThreeTicksThenDisable(t *testing.T) {
	ft := newFakeTicker()
	u := newTestUpdater(t, ft, 1)
	initial := u.Snapshot().TotalCrimes

	sub, cancel := u.Subscribe()
	defer cancel()

	require.NoError(t, u.SetAutoRefresh(true))
	assert.Equal(t, StateRunning, nextSnapshot(t, sub).State)

	for i := 0; i < 3; i++ {
		ft.fire()
		snap := nextSnapshot(t, sub)
		assert.True(t, snap.AutoRefresh)
	}

	total := u.Snapshot().TotalCrimes
	assert.GreaterOrEqual(t, total, initial-15)
	assert.LessOrEqual(t, total, initial+12)

	require.NoError(t, u.SetAutoRefresh(false))
	assert.Equal(t, StateIdle, u.State())
	assert.True(t, ft.isStopped(), "ticker should be released on disable")

	before := u.Snapshot()
	ft.fire()
	ft.fire()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, u.Snapshot())
}

func TestUpdater_EnableIsIdempotent(t *testing.T) {
	calls := 0
	ft := newFakeTicker()
	u := NewUpdater(Options{NewTicker: func(time.Duration) Ticker {
		calls++
		return ft
	}})
	defer u.Close()

	require.NoError(t, u.SetAutoRefresh(true))
	require.NoError(t, u.SetAutoRefresh(true))
	assert.Equal(t, 1, calls)

	require.NoError(t, u.SetAutoRefresh(false))
	require.NoError(t, u.SetAutoRefresh(false))
	assert.Equal(t, StateIdle, u.State())
}

func TestUpdater_RefreshRestampsOnly(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	u := NewUpdater(Options{RefreshDelay: time.Millisecond, Now: clock, NewTicker: func(time.Duration) Ticker { return newFakeTicker() }})
	defer u.Close()
	before := u.Snapshot()

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	require.NoError(t, u.Refresh(context.Background()))
	after := u.Snapshot()
	assert.Equal(t, before.TotalCrimes, after.TotalCrimes)
	assert.Equal(t, before.RiskScore, after.RiskScore)
	assert.Equal(t, before.TrendPercent, after.TrendPercent)
	assert.Equal(t, before.LastUpdated.Add(time.Minute), after.LastUpdated)
	assert.False(t, after.Refreshing)
}

func TestUpdater_RefreshBusy(t *testing.T) {
	u := NewUpdater(Options{RefreshDelay: time.Hour})
	defer u.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- u.Refresh(ctx) }()

	require.Eventually(t, u.Busy, time.Second, time.Millisecond)
	assert.True(t, u.Snapshot().Refreshing)
	assert.ErrorIs(t, u.Refresh(context.Background()), ErrRefreshInProgress)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.False(t, u.Busy())
}

func TestUpdater_Close(t *testing.T) {
	ft := newFakeTicker()
	u := NewUpdater(Options{NewTicker: func(time.Duration) Ticker { return ft }})

	sub, _ := u.Subscribe()
	require.NoError(t, u.SetAutoRefresh(true))
	require.NoError(t, u.Close())

	assert.True(t, ft.isStopped())
	assert.Equal(t, StateIdle, u.State())
	assert.ErrorIs(t, u.SetAutoRefresh(true), ErrClosed)
	assert.True(t, errors.Is(u.Refresh(context.Background()), ErrClosed))
	assert.NoError(t, u.SetAutoRefresh(false))
	assert.NoError(t, u.Close())

	for range sub {
	}
}

func TestUpdater_OnTick(t *testing.T) {
	ft := newFakeTicker()
	ticks := make(chan Snapshot, 1)
	u := NewUpdater(Options{
		NewTicker: func(time.Duration) Ticker { return ft },
		OnTick:    func(s Snapshot) { ticks <- s },
	})
	defer u.Close()

	require.NoError(t, u.SetAutoRefresh(true))
	ft.fire()
	select {
	case s := <-ticks:
		assert.Equal(t, StateRunning, s.State)
	case <-time.After(2 * time.Second):
		t.Fatal("OnTick not called")
	}
}

func TestUpdater_Notifications(t *testing.T) {
	u := NewUpdater(Options{})
	defer u.Close()

	assert.True(t, u.Snapshot().Notifications)
	u.SetNotifications(false)
	assert.False(t, u.Snapshot().Notifications)
}
