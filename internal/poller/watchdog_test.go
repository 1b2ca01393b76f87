package poller

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"twitterui/internal/domain"
	"twitterui/internal/poller/mocks"
)

func newTestWatchdog(t *testing.T, state *State, restarter Restarter, now time.Time) *Watchdog {
	t.Helper()
	w := NewWatchdog(state, restarter, WatchdogConfig{
		Timeout:    30 * time.Second,
		CheckEvery: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.now = func() time.Time { return now }
	return w
}

func TestWatchdog_Check(t *testing.T) {
	start := time.Date(2008, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		inFlight bool
		busy     bool
		elapsed  time.Duration
		restart  bool
	}{
		{name: "no fetch in flight", inFlight: false, elapsed: time.Hour, restart: false},
		{name: "fetch within timeout", inFlight: true, elapsed: 10 * time.Second, restart: false},
		{name: "fetch exactly at timeout", inFlight: true, elapsed: 30 * time.Second, restart: false},
		{name: "stalled while busy", inFlight: true, busy: true, elapsed: time.Minute, restart: false},
		{name: "stalled while idle", inFlight: true, elapsed: 31 * time.Second, restart: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			restarter := mocks.NewMockRestarter(ctrl)
			if tt.restart {
				restarter.EXPECT().Restart("Loading...").Times(1)
			}

			state := NewState()
			state.setLoop(1)
			if tt.inFlight {
				state.beginFetch(1, start)
			}
			state.SetBusy(tt.busy)

			w := newTestWatchdog(t, state, restarter, start.Add(tt.elapsed))
			assert.Equal(t, tt.restart, w.Check())
		})
	}
}

func TestWatchdog_Defaults(t *testing.T) {
	w := NewWatchdog(NewState(), nil, WatchdogConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, 30*time.Second, w.timeout)
	assert.Equal(t, 5*time.Second, w.every)
}

func TestWatchdog_RunStopsOnCancel(t *testing.T) {
	w := NewWatchdog(NewState(), nil, WatchdogConfig{CheckEvery: time.Millisecond}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watchdog did not stop")
	}
}

// A fetch that never returns is abandoned and polling resumes on its own.
func TestWatchdog_RecoversStalledPoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockTimelineClient(ctrl)
	view := mocks.NewMockView(ctrl)
	rec := &viewRecorder{}
	rec.expect(view)

	var calls atomic.Int32
	client.EXPECT().FetchFriendsTimeline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.Session) (domain.Timeline, error) {
			if calls.Add(1) == 1 {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return domain.Timeline{ts(100)}, nil
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := NewState()
	state.SetSession(domain.Session{Login: "alice", Password: "pw"})

	sched := NewScheduler(client, view, nil, state, Config{Interval: time.Hour, Tick: time.Millisecond}, logger)
	watchdog := NewWatchdog(state, sched, WatchdogConfig{
		Timeout:    20 * time.Millisecond,
		CheckEvery: 5 * time.Millisecond,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		require.True(t, sched.Wait(time.Second))
	}()

	require.NoError(t, sched.Start(ctx))
	go func() { _ = watchdog.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.rendered()) == 1 }, time.Second, 2*time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, rec.sawStatus("Loading..."))

	_, inFlight := state.FetchStartedAt()
	assert.False(t, inFlight)
}

// Leaving and re-entering the timeline while a fetch hangs does not hide the
// hung fetch from the watchdog.
func TestWatchdog_RecoversStalledFetchAfterReenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockTimelineClient(ctrl)
	view := mocks.NewMockView(ctrl)
	rec := &viewRecorder{}
	rec.expect(view)

	var calls atomic.Int32
	entered := make(chan struct{})
	client.EXPECT().FetchFriendsTimeline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.Session) (domain.Timeline, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return domain.Timeline{ts(100)}, nil
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := NewState()
	state.SetSession(domain.Session{Login: "alice", Password: "pw"})

	sched := NewScheduler(client, view, nil, state, Config{Interval: time.Hour, Tick: time.Millisecond}, logger)
	watchdog := NewWatchdog(state, sched, WatchdogConfig{
		Timeout:    20 * time.Millisecond,
		CheckEvery: 5 * time.Millisecond,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		require.True(t, sched.Wait(time.Second))
	}()

	require.NoError(t, sched.Start(ctx))

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first fetch never started")
	}

	sched.SetBusy(true)
	sched.Reenter()

	_, inFlight := state.FetchStartedAt()
	assert.True(t, inFlight)

	go func() { _ = watchdog.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.rendered()) == 1 }, time.Second, 2*time.Millisecond)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
