package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

var errLockHeld = errors.New("lock already held")

// FileLock serializes config file access across processes. It locks a separate
// file next to the config rather than the config itself, so the config can be
// replaced while locked.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a FileLock for the config files in dir.
func NewFileLock(dir string) *FileLock {
	return &FileLock{path: filepath.Join(dir, lockFileName)}
}

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.acquire(true)
}

// RLock acquires a shared lock, blocking until it is available.
func (l *FileLock) RLock() error {
	return l.acquire(false)
}

func (l *FileLock) acquire(exclusive bool) error {
	if l.file != nil {
		return errLockHeld
	}

	flag := os.O_CREATE | os.O_RDONLY
	kind := "shared"
	if exclusive {
		flag = os.O_CREATE | os.O_RDWR
		kind = "exclusive"
	}

	f, err := os.OpenFile(l.path, flag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := lockFile(f, exclusive); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to acquire %s lock: %w", kind, err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := unlockFile(l.file); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	l.file = nil
	return nil
}
