package core

// Logger is any service that can report application events, possibly to an
// external error tracker. Implementations may inspect args for well-known
// types (eg. a user to tag the report with).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
