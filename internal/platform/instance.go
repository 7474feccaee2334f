// Package platform holds process-level glue that depends on the host system.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another copy of the program holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Lock is a process-wide single-instance lock. It binds a localhost port
// derived from the application name; the OS releases the port however the
// process dies, so there is no stale lock file to clean up. Two running
// copies would both warp the cursor on one chord press.
type Lock struct {
	listener net.Listener
}

// AcquireLock claims the single-instance lock for appName.
func AcquireLock(appName string) (*Lock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &Lock{listener: listener}, nil
}

// Release frees the lock. Safe to call on a nil Lock.
func (l *Lock) Release() {
	if l == nil || l.listener == nil {
		return
	}
	_ = l.listener.Close()
}

func lockPort(appName string) int {
	const (
		base = 29000
		span = 10000
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return base + int(hash.Sum32()%span)
}
