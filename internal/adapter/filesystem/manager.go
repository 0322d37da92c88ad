package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/port"
)

// Manager handles output directory operations
type Manager struct {
	rootDir  string
	dirMode  os.FileMode
	fileMode os.FileMode
}

// Ensure Manager implements port.FileSystem
var _ port.FileSystem = (*Manager)(nil)

// NewManager creates a filesystem manager rooted at rootDir.
// The directory is not created until EnsureRoot is called.
func NewManager(rootDir string) *Manager {
	return &Manager{
		rootDir:  rootDir,
		dirMode:  0755,
		fileMode: 0644,
	}
}

// RootDir returns the output directory
func (m *Manager) RootDir() string {
	return m.rootDir
}

// Path returns the local path for an output filename
func (m *Manager) Path(filename string) string {
	return filepath.Join(m.rootDir, filename)
}

// EnsureRoot creates the output directory tree; existing directories are left as they are
func (m *Manager) EnsureRoot() error {
	if err := os.MkdirAll(m.rootDir, m.dirMode); err != nil {
		return domain.NewFilesystemError("mkdir", m.rootDir, err)
	}
	return nil
}

// WriteFile creates or truncates filename and writes data to it.
// A failed write leaves whatever was written in place.
func (m *Manager) WriteFile(filename string, data []byte) (string, int64, error) {
	path := m.Path(filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, m.fileMode)
	if err != nil {
		return "", 0, domain.NewFilesystemError("open", path, err)
	}

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return "", int64(n), domain.NewFilesystemError("write", path, err)
	}

	if err := f.Close(); err != nil {
		return "", int64(n), domain.NewFilesystemError("close", path, fmt.Errorf("failed to close file: %w", err))
	}

	return path, int64(n), nil
}
