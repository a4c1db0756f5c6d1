package logger

import (
	"sync"
)

// Registry is an explicit named-logger registry. Unlike a process-wide
// singleton, a Registry is constructed and passed to the call sites
// that need name-based lookup; independent registries do not share
// state.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
	}
}

// Register stores a named logger, replacing any previous entry
func (r *Registry) Register(name string, l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[name] = l
}

// Get retrieves a named logger
func (r *Registry) Get(name string) (*Logger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loggers[name]
	return l, ok
}

// GetOrCreate retrieves a named logger, building and registering it
// with build on first lookup. Only one build runs per name.
func (r *Registry) GetOrCreate(name string, build func() *Logger) *Logger {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	l = build()
	r.loggers[name] = l
	return l
}

// Names returns the registered logger names
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	return names
}
