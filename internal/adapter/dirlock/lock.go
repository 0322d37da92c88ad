package dirlock

import (
	"fmt"

	"github.com/tharvik/flock"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/port"
)

// Lock holds an advisory flock on a directory.
// The directory itself is locked so no lock file is left behind.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Ensure Lock implements port.DirLock
var _ port.DirLock = (*Lock)(nil)

// New creates a lock for dir. The directory must exist before TryLock.
func New(dir string) *Lock {
	return &Lock{
		path: dir,
		fl:   flock.New(dir),
	}
}

// TryLock acquires the lock without blocking
func (l *Lock) TryLock() error {
	locked, err := l.fl.TryLock()
	if err != nil {
		l.fl.Close()
		return fmt.Errorf("lock %v: %w", l.path, err)
	}
	if !locked {
		l.fl.Close()
		return fmt.Errorf("lock %v: %w", l.path, domain.ErrRunInProgress)
	}
	return nil
}

// Unlock releases the lock and closes the underlying descriptor
func (l *Lock) Unlock() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("unlock %v: %w", l.path, err)
	}
	return l.fl.Close()
}
