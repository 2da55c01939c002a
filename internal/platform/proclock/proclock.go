// Package proclock guards against two bot instances long-polling the same
// Telegram token. The lock is advisory; the PID in the file is informational.
package proclock

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning means another process holds the lock.
var ErrAlreadyRunning = fmt.Errorf("another instance is already running")

// Lock is a held process lock. Release it on shutdown.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes the advisory lock at path, failing immediately when held.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire process lock %s: %w", path, err)
	}

	if !locked {
		return nil, fmt.Errorf("%w (lock file %s)", ErrAlreadyRunning, path)
	}

	// Best effort: the PID helps a human figure out who holds the lock.
	_ = os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644)

	return &Lock{fl: fl, path: path}, nil
}

func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release process lock %s: %w", l.path, err)
	}

	return nil
}
