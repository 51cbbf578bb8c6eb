package logging

import (
	"sync"
)

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	loggers map[string]Logger
	mu      sync.RWMutex
}

// NewLoggerFactory creates a new logger factory
func NewLoggerFactory() LoggerFactory {
	return &DefaultLoggerFactory{
		loggers: make(map[string]Logger),
	}
}

// CreateLogger creates a basic logger for the specified component
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewZapLogger(component)
	f.loggers[component] = logger
	return logger
}

// CreateHandlerLogger creates a logger for an HTTP handler group
func (f *DefaultLoggerFactory) CreateHandlerLogger(entity string) Logger {
	return f.CreateLogger("handlers").WithContext(map[string]interface{}{
		"entity": entity,
	})
}

// CreateRepositoryLogger creates a logger for a repository
func (f *DefaultLoggerFactory) CreateRepositoryLogger(entity string) Logger {
	return f.CreateLogger("repository").WithContext(map[string]interface{}{
		"entity": entity,
	})
}

// GlobalLoggerFactory provides a singleton logger factory instance
var (
	globalFactory LoggerFactory
	factoryOnce   sync.Once
)

// GetGlobalLoggerFactory returns the global logger factory instance
func GetGlobalLoggerFactory() LoggerFactory {
	factoryOnce.Do(func() {
		globalFactory = NewLoggerFactory()
	})
	return globalFactory
}

// SetGlobalLoggerFactory sets the global logger factory (useful for dependency injection)
func SetGlobalLoggerFactory(factory LoggerFactory) {
	globalFactory = factory
}
