package keybinds

import (
	"sync"

	"github.com/google/uuid"
)

// ChangedEvent names the notification published after every successful save
const ChangedEvent = "keybindings:changed"

// Subscription receives a signal on C whenever the mapping changes.
// Signals carry no payload; receivers re-Load to see the new bindings.
type Subscription struct {
	ID string
	C  <-chan struct{}
}

type subscriber struct {
	id     string
	ch     chan struct{}
	closed bool
	mu     sync.Mutex
}

// Broadcaster multicasts payload-less change signals to any number of subscribers.
// Publish never blocks: each subscriber holds at most one pending signal and
// further signals coalesce into it.
type Broadcaster struct {
	name        string
	subscribers []*subscriber
	subMutex    sync.RWMutex
}

var changes = NewBroadcaster(ChangedEvent)

// Changes returns the process-wide broadcaster used by stores that are not given their own
func Changes() *Broadcaster {
	return changes
}

// NewBroadcaster creates a broadcaster for the named event
func NewBroadcaster(name string) *Broadcaster {
	return &Broadcaster{
		name:        name,
		subscribers: make([]*subscriber, 0),
	}
}

// Name returns the event name
func (b *Broadcaster) Name() string {
	return b.name
}

// Publish signals every subscriber without waiting for any of them
func (b *Broadcaster) Publish() {
	b.subMutex.RLock()
	subscribers := make([]*subscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.subMutex.RUnlock()

	for _, sub := range subscribers {
		sub.mu.Lock()
		if !sub.closed {
			select {
			case sub.ch <- struct{}{}:
			default:
			}
		}
		sub.mu.Unlock()
	}
}

// Subscribe registers a new subscriber for future signals
func (b *Broadcaster) Subscribe() *Subscription {
	sub := &subscriber{
		id: uuid.New().String(),
		ch: make(chan struct{}, 1),
	}

	b.subMutex.Lock()
	b.subscribers = append(b.subscribers, sub)
	b.subMutex.Unlock()

	return &Subscription{ID: sub.id, C: sub.ch}
}

// Unsubscribe removes a subscriber and closes its channel
func (b *Broadcaster) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}

	b.subMutex.Lock()
	defer b.subMutex.Unlock()

	for i, sub := range b.subscribers {
		if sub.id != s.ID {
			continue
		}

		sub.mu.Lock()
		if !sub.closed {
			close(sub.ch)
			sub.closed = true
		}
		sub.mu.Unlock()

		b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
		return
	}
}

// Len returns the number of active subscribers
func (b *Broadcaster) Len() int {
	b.subMutex.RLock()
	defer b.subMutex.RUnlock()

	return len(b.subscribers)
}
