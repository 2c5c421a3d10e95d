package bookmarks

import (
	"context"
	"sync"

	"github.com/linknest/linknest/internal/model"
)

// EventKind identifies a bookmark store change notification.
type EventKind int

const (
	EventRemoved EventKind = iota
	EventChanged
	EventMoved
)

// Event is a coarse change notification. It carries only the affected
// ID; consumers re-derive their views rather than patch incrementally.
type Event struct {
	Kind EventKind
	ID   string
}

// CreateParams holds parameters for creating a bookmark.
type CreateParams struct {
	Title    string
	URL      string
	ParentID *string // nil = root level
}

// UpdateParams holds partial-update parameters. Nil fields are left
// unchanged.
type UpdateParams struct {
	Title *string
	URL   *string
}

// Service is the hierarchical bookmark store. IDs are opaque, stable
// strings assigned by the store.
type Service interface {
	GetTree(ctx context.Context) ([]model.Node, error)
	Create(ctx context.Context, params CreateParams) (model.Node, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	Remove(ctx context.Context, id string) error
	Move(ctx context.Context, id string, newParentID *string) error

	Subscribe() <-chan Event
	Unsubscribe(ch <-chan Event)
}

// notifier implements fan-out of change events to subscribers.
// Embedded by the Service implementations.
type notifier struct {
	mu   sync.Mutex
	subs []chan Event
}

// Subscribe registers a new event channel.
func (n *notifier) Subscribe() <-chan Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan Event, 16)
	n.subs = append(n.subs, ch)
	return ch
}

// Unsubscribe removes and closes a previously subscribed channel.
func (n *notifier) Unsubscribe(ch <-chan Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub == ch {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// publish delivers an event to all subscribers. Sends never block; a
// subscriber that has fallen 16 events behind misses the notification,
// which is acceptable for coarse invalidations.
func (n *notifier) publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
