package errors

import "errors"

// ErrLockNotAcquired the lock is already held by another holder
var ErrLockNotAcquired = errors.New("lock is held by another process")
