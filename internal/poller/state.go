package poller

import (
	"sync"
	"time"

	"twitterui/internal/domain"
)

// State is the poll bookkeeping shared by the scheduler, the watchdog and the
// UI. The scheduler is the only writer of the timeline, countdown and fetch
// marker; the UI writes busy and the session.
type State struct {
	mu sync.Mutex

	session domain.Session

	last    domain.Timeline
	hasLast bool

	countdown int
	pending   bool
	busy      bool

	// loopGen identifies the live poll loop. Writes from older loops are dropped.
	loopGen      uint64
	fetchStarted time.Time
}

func NewState() *State {
	return &State{}
}

func (s *State) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *State) SetSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *State) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *State) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

// LastTimeline returns the timeline currently on screen and whether one was
// ever displayed.
func (s *State) LastTimeline() (domain.Timeline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}

func (s *State) Countdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown
}

// FetchStartedAt reports when the in-flight fetch began.
func (s *State) FetchStartedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchStarted, !s.fetchStarted.IsZero()
}

// Reset returns the displayed timeline, countdown and busy flag to their
// initial values. The session and the live loop's fetch marker are kept.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	s.hasLast = false
	s.countdown = 0
	s.pending = false
	s.busy = false
}

func (s *State) setLoop(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loopGen = gen
	s.fetchStarted = time.Time{}
}

// beginCycle consumes any refresh request made before this iteration.
func (s *State) beginCycle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.loopGen {
		s.pending = false
	}
}

func (s *State) beginFetch(gen uint64, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.loopGen {
		s.fetchStarted = now
	}
}

func (s *State) endFetch(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.loopGen {
		s.fetchStarted = time.Time{}
	}
}

// applyTimeline stores next as the displayed timeline if it differs from the
// current one and reports whether it must be rendered.
func (s *State) applyTimeline(gen uint64, next domain.Timeline) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loopGen || !domain.Changed(s.last, s.hasLast, next) {
		return false
	}
	s.last = next
	s.hasLast = true
	return true
}

// resetCountdown arms the wait after a cycle. A refresh requested while the
// cycle ran makes the next cycle start right away. It reports false, and
// changes nothing, when gen is no longer the live loop.
func (s *State) resetCountdown(gen uint64, interval int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loopGen {
		return false
	}
	if s.pending {
		s.pending = false
		s.countdown = 0
		return true
	}
	s.countdown = interval
	return true
}

func (s *State) requestRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = 0
	s.pending = true
}

func (s *State) tickCountdown(gen uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.loopGen && s.countdown > 0 {
		s.countdown--
	}
	return s.countdown
}
