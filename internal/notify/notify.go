// Package notify sends desktop notifications over the session bus using
// the org.freedesktop.Notifications interface. It is a thin client: when
// no session bus or notification daemon is available, sends fail softly
// and are logged rather than surfaced to the caller's UI flow.
package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	// busName is the well-known name of the notification daemon.
	busName = "org.freedesktop.Notifications"
	// objectPath is the notification object path.
	objectPath = "/org/freedesktop/Notifications"
	// methodNotify is the fully qualified Notify method name.
	methodNotify = "org.freedesktop.Notifications.Notify"
)

// Notifier sends notifications on the session bus. The zero value is not
// usable; construct with New. A Notifier is safe for concurrent use.
type Notifier struct {
	appName string
	logger  *slog.Logger

	mu   sync.Mutex
	conn *dbus.Conn
}

// New creates a Notifier for the given application name. The bus
// connection is established lazily on first send.
func New(appName string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		appName: appName,
		logger:  logger,
	}
}

// Send delivers a transient notification with the given summary and body.
// Failures are logged and returned but callers are expected to treat them
// as non-fatal.
func (n *Notifier) Send(summary, body string) error {
	conn, err := n.connect()
	if err != nil {
		n.logger.Debug("notification skipped, no session bus", "error", err)
		return fmt.Errorf("connect to session bus: %w", err)
	}

	obj := conn.Object(busName, objectPath)
	call := obj.Call(methodNotify, 0,
		n.appName,          // app_name
		uint32(0),          // replaces_id
		"",                 // app_icon
		summary,            // summary
		body,               // body
		[]string{},         // actions
		map[string]dbus.Variant{}, // hints
		int32(-1),          // expire_timeout: server default
	)
	if call.Err != nil {
		n.logger.Debug("notification failed", "summary", summary, "error", call.Err)
		return fmt.Errorf("call Notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("decode Notify reply: %w", err)
	}
	n.logger.Debug("notification sent", "id", id, "summary", summary)
	return nil
}

// Close releases the bus connection. SessionBus connections are shared,
// so Close only drops the local reference.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.conn = nil
}

func (n *Notifier) connect() (*dbus.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn != nil {
		return n.conn, nil
	}
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	n.conn = conn
	return conn, nil
}
