package ewebsock

// Logger is the minimal logging surface the package uses internally.
// Nothing is logged by default; plug an adapter for your logging
// framework in with SetLogger.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var pkgLogger Logger = noopLogger{}

// SetLogger routes the package's internal logging through l. Passing
// nil silences it again. Call it before connecting; it is not
// synchronized with running connections.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	pkgLogger = l
}
