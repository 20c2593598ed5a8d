package eventlog

import (
	"github.com/rs/zerolog"
)

// LoggingListener emits one structured log line per event. It performs no
// filtering, retry or transformation; it is a pure side-effecting sink.
type LoggingListener struct {
	log zerolog.Logger
}

// NewLoggingListener creates a LoggingListener writing to the given logger.
func NewLoggingListener(log zerolog.Logger) *LoggingListener {
	return &LoggingListener{log: log}
}

// OnUserEvent logs a user-facing security event.
func (l *LoggingListener) OnUserEvent(event UserEvent) {
	details := zerolog.Dict()
	for key, value := range event.Details {
		details = details.Str(key, value)
	}
	l.log.Info().
		Str("type", event.Type).
		Str("user_id", event.UserID).
		Str("ip", event.IPAddress).
		Dict("details", details).
		Msg("User event")
}

// OnAdminEvent logs an administrative event.
func (l *LoggingListener) OnAdminEvent(event AdminEvent) {
	l.log.Info().
		Str("op", event.OperationType).
		Str("resource", event.ResourcePath).
		Str("realm", event.RealmID).
		Msg("Admin event")
}

// Close is part of the Listener contract; the sink holds no resources.
func (l *LoggingListener) Close() {
	l.log.Debug().Msg("Closing event logging listener")
}
