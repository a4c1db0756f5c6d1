package instrument

import (
	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/logger"
)

// LevelGuard restores a logger's level to what it was when the guard
// was created. Each guard remembers only the level at its own entry,
// so misnested or concurrent overrides of the same logger restore
// whatever the enclosing guard saved, which may be stale. Do not
// override one logger's level from multiple goroutines without
// external synchronization.
type LevelGuard struct {
	logger *logger.Logger
	prev   core.Level
}

// OverrideLevel sets the logger's level to the target and returns a
// guard that restores the previous level. Callers defer Restore so the
// level comes back even when the scope exits via panic.
func OverrideLevel(l *logger.Logger, level core.Level) *LevelGuard {
	g := &LevelGuard{
		logger: l,
		prev:   l.Level(),
	}
	l.SetLevel(level)
	return g
}

// Restore resets the logger to the level saved at entry. Safe to call
// more than once; later calls re-apply the same saved level.
func (g *LevelGuard) Restore() {
	g.logger.SetLevel(g.prev)
}

// WithLevel runs fn with the logger's level overridden, restoring the
// previous level when fn returns or panics.
func WithLevel(l *logger.Logger, level core.Level, fn func() error) error {
	guard := OverrideLevel(l, level)
	defer guard.Restore()
	return fn()
}
