package port

// FileSystem defines the interface for output directory operations
type FileSystem interface {
	// RootDir returns the output directory
	RootDir() string

	// Path returns the local path for an output filename
	Path(filename string) string

	// EnsureRoot creates the output directory tree if it is missing
	EnsureRoot() error

	// WriteFile creates or truncates the named file and writes data to it
	// Returns: path, bytes written, error
	WriteFile(filename string, data []byte) (string, int64, error)
}

// DirLock is an advisory, cross-process lock on the output directory
type DirLock interface {
	// TryLock acquires the lock without blocking.
	// Returns domain.ErrRunInProgress if another process holds it.
	TryLock() error

	// Unlock releases the lock
	Unlock() error
}
