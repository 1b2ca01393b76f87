package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"twitterui/internal/domain"
)

const (
	msgLoading    = "Loading..."
	msgRefreshing = "Refreshing..."
	msgSending    = "Sending..."
)

type Config struct {
	// Interval between the end of one fetch and the start of the next.
	Interval time.Duration
	// Tick is the step the countdown is decremented by. Defaults to one second.
	Tick time.Duration
}

// Scheduler runs the fetch-compare-render loop. At most one loop, and so at
// most one fetch, is live at any time.
type Scheduler struct {
	client    TimelineClient
	view      View
	publisher Publisher
	state     *State
	interval  int
	tick      time.Duration
	logger    *slog.Logger
	now       func() time.Time

	wake chan struct{}
	wg   sync.WaitGroup

	mu         sync.Mutex
	parent     context.Context
	cancelLoop context.CancelFunc
	gen        uint64
}

func NewScheduler(
	client TimelineClient,
	view View,
	publisher Publisher,
	state *State,
	cfg Config,
	logger *slog.Logger,
) *Scheduler {
	tick := cfg.Tick
	if tick <= 0 {
		tick = time.Second
	}
	interval := int(cfg.Interval / tick)
	if interval < 1 {
		interval = 1
	}

	return &Scheduler{
		client:    client,
		view:      view,
		publisher: publisher,
		state:     state,
		interval:  interval,
		tick:      tick,
		logger:    logger.With("component", "scheduler"),
		now:       time.Now,
		wake:      make(chan struct{}, 1),
	}
}

// Start launches the poll loop and returns immediately. The loop lives until
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parent != nil {
		return errors.New("scheduler already started")
	}
	if s.state.Session().Login == "" {
		return domain.ErrNoCredentials
	}

	s.parent = ctx
	s.spawnLoopLocked()

	s.logger.Info("scheduler started", "interval", time.Duration(s.interval)*s.tick)
	return nil
}

func (s *Scheduler) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parent != nil
}

// TriggerImmediateRefresh makes the running loop fetch now, or right after the
// fetch currently in flight.
func (s *Scheduler) TriggerImmediateRefresh(msg string) {
	if msg != "" {
		s.view.ShowStatus(msg)
	}
	s.state.requestRefresh()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// PostStatus sends text in the background. The compose box is cleared before
// the request goes out and one refresh follows it whatever the outcome.
func (s *Scheduler) PostStatus(text string) {
	ctx := s.context()
	if ctx == nil {
		s.view.ShowStatus(fmt.Sprintf("Error: %v", domain.ErrNoCredentials))
		return
	}
	if ctx.Err() != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.recoverTo(ctx, "post")

		s.view.ClearCompose()
		s.view.ShowStatus(msgSending)

		session := s.state.Session()
		err := s.client.PostStatus(ctx, session, text)
		if ctx.Err() != nil {
			return
		}

		if err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrPost, err)
			s.logger.Error("post failed", "error", err)
			s.view.ShowStatus(fmt.Sprintf("Error: %v", err))
			s.TriggerImmediateRefresh("")
			return
		}

		s.publish(ctx, domain.Event{
			Kind:  domain.EventStatusPosted,
			Login: session.Login,
			At:    s.now().UTC(),
			Text:  text,
		})
		s.TriggerImmediateRefresh(msgRefreshing)
	}()
}

// Restart abandons the live loop, including its fetch, and starts a new one.
func (s *Scheduler) Restart(msg string) {
	s.mu.Lock()
	if s.parent == nil || s.parent.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.cancelLoop()
	s.spawnLoopLocked()
	gen := s.gen
	s.mu.Unlock()

	s.logger.Warn("poll loop restarted", "generation", gen)
	if msg != "" {
		s.view.ShowStatus(msg)
	}
}

// Reenter resets the poll state when the timeline view is entered again.
func (s *Scheduler) Reenter() {
	s.state.Reset()
	s.TriggerImmediateRefresh(msgLoading)
}

func (s *Scheduler) SetBusy(busy bool) {
	s.state.SetBusy(busy)
}

func (s *Scheduler) SetSession(session domain.Session) {
	s.state.SetSession(session)
}

// Wait blocks until every goroutine the scheduler spawned has returned or the
// timeout elapses. It reports whether they all returned.
func (s *Scheduler) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		s.logger.Warn("background work still running at shutdown", "timeout", timeout)
		return false
	}
}

func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parent
}

func (s *Scheduler) spawnLoopLocked() {
	ctx, cancel := context.WithCancel(s.parent)
	s.gen++
	gen := s.gen
	s.cancelLoop = cancel
	s.state.setLoop(gen)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.run(ctx, gen)
	}()
}

func (s *Scheduler) run(ctx context.Context, gen uint64) {
	for {
		s.runCycle(ctx, gen)
		if ctx.Err() != nil {
			s.logger.Debug("poll loop stopped", "generation", gen)
			return
		}
		if !s.wait(ctx, gen) {
			s.logger.Debug("poll loop stopped", "generation", gen)
			return
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, gen uint64) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("poll cycle panicked", "panic", p, "stack", string(debug.Stack()))
			s.state.endFetch(gen)
			if ctx.Err() == nil && s.state.resetCountdown(gen, s.interval) {
				s.view.ShowStatus(fmt.Sprintf("Error: %v", p))
			}
		}
	}()

	s.state.beginCycle(gen)

	// Busy cycles leave the status line alone.
	if s.state.Busy() {
		s.state.resetCountdown(gen, s.interval)
		return
	}

	msg := ""
	if err := s.refresh(ctx, gen); err != nil {
		if ctx.Err() != nil {
			return
		}
		msg = s.handleFetchError(err)
	}

	if s.state.resetCountdown(gen, s.interval) {
		s.view.ShowStatus(msg)
	}
}

func (s *Scheduler) refresh(ctx context.Context, gen uint64) error {
	session := s.state.Session()

	s.state.beginFetch(gen, s.now())
	timeline, err := s.client.FetchFriendsTimeline(ctx, session)
	s.state.endFetch(gen)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}

	if !s.state.applyTimeline(gen, timeline) {
		s.logger.Debug("timeline unchanged", "statuses", len(timeline))
		return nil
	}

	s.logger.Info("timeline updated", "statuses", len(timeline))
	s.view.ShowTimeline(timeline)

	event := domain.Event{
		Kind:  domain.EventTimelineUpdated,
		Login: session.Login,
		At:    s.now().UTC(),
		Count: len(timeline),
	}
	if head, ok := timeline.Head(); ok {
		event.HeadCreatedAt = &head.CreatedAt
	}
	s.publish(ctx, event)

	return nil
}

func (s *Scheduler) handleFetchError(err error) string {
	if errors.Is(err, domain.ErrAuth) {
		s.logger.Error("credentials rejected, polling suspended", "error", err)
		s.state.SetBusy(true)
		s.view.RequestCredentials(err)
		return "Authentication failed, please check your credentials."
	}

	s.logger.Error("fetch failed", "error", err)
	return fmt.Sprintf("Error: %v", err)
}

// wait sleeps tick by tick until the countdown runs out or a refresh is
// requested. It returns false once ctx is done.
func (s *Scheduler) wait(ctx context.Context, gen uint64) bool {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for s.state.Countdown() > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			s.state.tickCountdown(gen)
		case <-s.wake:
		}
	}

	return ctx.Err() == nil
}

func (s *Scheduler) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "kind", event.Kind, "error", err)
	}
}

func (s *Scheduler) recoverTo(ctx context.Context, op string) {
	if p := recover(); p != nil {
		s.logger.Error("background task panicked", "op", op, "panic", p, "stack", string(debug.Stack()))
		if ctx.Err() == nil {
			s.view.ShowStatus(fmt.Sprintf("Error: %v", p))
		}
	}
}
