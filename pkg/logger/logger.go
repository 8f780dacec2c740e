package logger

// Level is the severity of a log line
type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off entirely
	TraceLevel Level = iota // TraceLevel is used for detailed debugging information
	DebugLevel              // DebugLevel is used for debugging information
	InfoLevel               // InfoLevel is used for informational messages
	WarnLevel               // WarnLevel is used for warning messages
	ErrorLevel              // ErrorLevel is used for error messages
)

// Logger is the logging facade consumed by the library. Implementations must
// be safe for use from multiple goroutines.
type Logger interface {
	WithField(key string, value any) Logger  // WithField returns a logger with the given key-value pair
	WithFields(fields map[string]any) Logger // WithFields returns a logger with the given fields
	WithError(err error) Logger              // WithError returns a logger with the given error

	Trace(args ...any) // Trace logs the message with the trace level
	Debug(args ...any) // Debug logs the message with the debug level
	Info(args ...any)  // Info logs the message with the info level
	Warn(args ...any)  // Warn logs the message with the warning level
	Error(args ...any) // Error logs the message with the error level

	Tracef(format string, args ...any) // Tracef formats and logs at trace level
	Debugf(format string, args ...any) // Debugf formats and logs at debug level
	Infof(format string, args ...any)  // Infof formats and logs at info level
	Warnf(format string, args ...any)  // Warnf formats and logs at warning level
	Errorf(format string, args ...any) // Errorf formats and logs at error level

	SetLevel(level Level) // SetLevel sets the logging level for the logger
	GetLevel() Level      // GetLevel returns the logging level for the logger
}
