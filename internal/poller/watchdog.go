package poller

import (
	"context"
	"log/slog"
	"time"

	"twitterui/internal/domain"
)

type WatchdogConfig struct {
	// Timeout is how long a fetch may run before it is considered stalled.
	Timeout time.Duration
	// CheckEvery is the cadence of the stall check.
	CheckEvery time.Duration
}

// Watchdog restarts the poll loop when a fetch hangs while the UI is idle. The
// hung request is abandoned, not closed gracefully.
type Watchdog struct {
	state     *State
	restarter Restarter
	timeout   time.Duration
	every     time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewWatchdog(state *State, restarter Restarter, cfg WatchdogConfig, logger *slog.Logger) *Watchdog {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.CheckEvery <= 0 {
		cfg.CheckEvery = 5 * time.Second
	}

	return &Watchdog{
		state:     state,
		restarter: restarter,
		timeout:   cfg.Timeout,
		every:     cfg.CheckEvery,
		logger:    logger.With("component", "watchdog"),
		now:       time.Now,
	}
}

func (w *Watchdog) Run(ctx context.Context) error {
	w.logger.Info("watchdog started", "timeout", w.timeout, "every", w.every)

	ticker := time.NewTicker(w.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watchdog stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check restarts the poll loop if the in-flight fetch is older than the
// timeout. It reports whether a restart happened.
func (w *Watchdog) Check() bool {
	started, inFlight := w.state.FetchStartedAt()
	if !inFlight || w.state.Busy() {
		return false
	}

	elapsed := w.now().Sub(started)
	if elapsed <= w.timeout {
		return false
	}

	w.logger.Warn("restarting poll loop",
		"error", domain.ErrStalled,
		"elapsed", elapsed,
		"timeout", w.timeout,
	)
	w.restarter.Restart(msgLoading)

	return true
}
