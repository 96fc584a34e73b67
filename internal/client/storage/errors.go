package storage

import "errors"

// ErrSessionNotFound indicates that no session is stored (logged out)
var ErrSessionNotFound = errors.New("session not found")
