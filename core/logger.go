package core

// Logger is any leveled logging service.
// Implementations may inspect args for structured context; a teacher.Teacher
// arg identifies the acting user for error reporting.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
