// Package eventlog models the identity provider's event-listener extension
// point: a host-registered callback invoked synchronously on every security
// and administrative event, with a logging sink as the only implementation.
package eventlog

// UserEvent is a user-facing security event emitted by the identity provider
// (login, logout, token issuance and similar).
type UserEvent struct {
	Type      string
	UserID    string
	IPAddress string
	Details   map[string]string
}

// AdminEvent is an administrative event emitted by the identity provider
// (realm, role or user changes).
type AdminEvent struct {
	OperationType string
	ResourcePath  string
	RealmID       string
}

// Listener is the callback contract registered with the event pipeline.
// Implementations must not block indefinitely; a panicking listener is
// recovered by the pipeline and never interrupts event emission.
type Listener interface {
	OnUserEvent(event UserEvent)
	OnAdminEvent(event AdminEvent)
	Close()
}
