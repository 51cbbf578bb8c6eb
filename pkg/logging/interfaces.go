package logging

// Logger provides logging functionality with structured fields
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
	WithContext(ctx map[string]interface{}) Logger
}

// LoggerFactory creates component-scoped loggers
type LoggerFactory interface {
	CreateLogger(component string) Logger
	CreateHandlerLogger(entity string) Logger
	CreateRepositoryLogger(entity string) Logger
}
