package view

import (
	"context"
	"time"

	"github.com/linknest/linknest/internal/bookmarks"
)

// HighlightDuration is how long a highlight stays before auto-clearing.
const HighlightDuration = 2000 * time.Millisecond

// ScrollSettleDelay is how long a scroll consumer waits before locating
// the target entry, since rendering is external and asynchronous.
const ScrollSettleDelay = 100 * time.Millisecond

// ScrollRequest asks the presentation layer to locate an entry and
// bring it into view. Best-effort: if the entry cannot be found after
// the settle delay, the request is silently dropped.
type ScrollRequest struct {
	ID string
}

// Controller keeps the view Store consistent with the external stores
// despite out-of-band mutation, and drives the highlight/scroll
// feedback cycle. Like the Store, it belongs to a single cooperative
// execution context.
type Controller struct {
	store *Store

	// OnScroll receives scroll requests after refreshes that are
	// expected to bring a specific entry into view. May be nil.
	OnScroll func(ScrollRequest)

	// OnHighlight receives the expiry token each time a highlight is
	// set, so the host can arm the HighlightDuration timer. May be nil.
	OnHighlight func(token int)
}

// NewController creates a Controller over the given Store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// Store returns the controlled view store.
func (c *Controller) Store() *Store {
	return c.store
}

// HandleStoreEvent reacts to a bookmark store change notification.
// Removed, changed, and moved are coarse invalidations: the store does
// not expose enough to patch incrementally without risking drift, so
// every event triggers a full refresh.
func (c *Controller) HandleStoreEvent(ctx context.Context, ev bookmarks.Event) error {
	return c.store.Refresh(ctx)
}

// HandleBookmarkAdded reacts to the cross-context creation
// notification: highlight the new entry, refresh, then request a
// scroll once the refresh has completed. The bookmark and tag writes
// were committed by the creation window before the message was sent,
// so a refresh failure here loses only the feedback cycle.
func (c *Controller) HandleBookmarkAdded(ctx context.Context, id string) error {
	c.highlight(id)
	if err := c.store.Refresh(ctx); err != nil {
		return err
	}
	c.scroll(id)
	return nil
}

// ExpireHighlight clears the highlight for a token issued by an
// earlier highlight request. Stale tokens are ignored, so a replaced
// timer firing late is harmless.
func (c *Controller) ExpireHighlight(token int) {
	c.store.ExpireHighlight(token)
}

// highlight sets the highlight and hands the expiry token to the host.
func (c *Controller) highlight(id string) {
	token := c.store.SetHighlight(id)
	if c.OnHighlight != nil {
		c.OnHighlight(token)
	}
}

// scroll emits a scroll request to the host.
func (c *Controller) scroll(id string) {
	if c.OnScroll != nil {
		c.OnScroll(ScrollRequest{ID: id})
	}
}
