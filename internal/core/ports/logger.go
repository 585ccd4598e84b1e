package ports

// LoggerPort takes a message plus optional key/value pairs.
type LoggerPort interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Error(msg string, err error, keyvals ...any)
	Warning(msg string, keyvals ...any)
	Close()
}
