// Package notify is the cross-context message channel between the
// creation window and the main view. Messages are one-shot and
// fire-and-forget: the sender only needs confirmation that the message
// was dispatched, not that the receiver finished processing it. A
// missing listener loses the highlight/scroll signal but never the
// underlying bookmark and tag writes, which are committed first.
package notify

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// TypeBookmarkAdded is sent by the creation flow after both stores
// have been written.
const TypeBookmarkAdded = "bookmark-added"

// Message is a cross-context notification.
type Message struct {
	Type       string `json:"type"`
	BookmarkID string `json:"bookmarkId"`
}

var upgrader = websocket.Upgrader{
	// Local, single-user socket; origin checks don't apply.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Listener accepts notification connections on a local socket and
// hands decoded messages to a callback.
type Listener struct {
	ln      net.Listener
	srv     *http.Server
	handler func(Message)
	log     zerolog.Logger
}

// Listen starts a Listener on addr. Pass a ":0" port to let the OS
// pick one; Addr reports the bound address.
func Listen(addr string, handler func(Message), log zerolog.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	l := &Listener{
		ln:      ln,
		handler: handler,
		log:     log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/notify", l.serveNotify)
	l.srv = &http.Server{Handler: mux}

	go func() {
		if err := l.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Debug().Err(err).Msg("notify listener stopped")
		}
	}()

	return l, nil
}

// Addr returns the bound listen address.
func (l *Listener) Addr() string {
	return l.ln.Addr().String()
}

// Close stops accepting connections.
func (l *Listener) Close() error {
	return l.srv.Close()
}

func (l *Listener) serveNotify(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.log.Debug().Err(err).Msg("notify upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.log.Debug().Err(err).Msg("notify read failed")
			}
			return
		}
		l.handler(msg)
	}
}

// Notify dials the listener at addr, writes one message, and closes.
// A returned nil means the message was handed to the socket; there is
// no acknowledgement beyond delivery.
func Notify(addr string, msg Message) error {
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/notify", nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WriteJSON(msg); err != nil {
		return err
	}

	// Best effort: tell the listener we're done before hanging up
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}
