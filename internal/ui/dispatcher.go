package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"twitterui/internal/domain"
)

// Sender delivers messages to the UI event loop. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Dispatcher is the poller's view. It queues calls from background goroutines
// and forwards them, in order, to the UI event loop. Enqueueing never blocks,
// so it is also safe to call from inside Update.
type Dispatcher struct {
	mu     sync.Mutex
	queue  []tea.Msg
	notify chan struct{}
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{notify: make(chan struct{}, 1)}
}

func (d *Dispatcher) ShowTimeline(timeline domain.Timeline) {
	d.enqueue(TimelineMsg{Timeline: timeline})
}

func (d *Dispatcher) ShowStatus(msg string) {
	d.enqueue(StatusMsg{Text: msg})
}

func (d *Dispatcher) ClearCompose() {
	d.enqueue(ClearComposeMsg{})
}

func (d *Dispatcher) RequestCredentials(err error) {
	d.enqueue(CredentialsRequestMsg{Err: err})
}

// Run pumps queued messages into sender until ctx is done.
func (d *Dispatcher) Run(ctx context.Context, sender Sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.notify:
		}

		for _, msg := range d.drain() {
			if ctx.Err() != nil {
				return
			}
			sender.Send(msg)
		}
	}
}

func (d *Dispatcher) enqueue(msg tea.Msg) {
	d.mu.Lock()
	d.queue = append(d.queue, msg)
	d.mu.Unlock()

	select {
	case d.notify <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) drain() []tea.Msg {
	d.mu.Lock()
	defer d.mu.Unlock()
	msgs := d.queue
	d.queue = nil
	return msgs
}
