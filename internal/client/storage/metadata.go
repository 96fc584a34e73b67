package storage

import (
	"context"
	"time"
)

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// InstallSalt returns the per-install random salt, creating it on first use
	InstallSalt(ctx context.Context) ([]byte, error)

	// SaveLastSync records the time of the last successful pass of a domain
	SaveLastSync(ctx context.Context, domain string, at time.Time) error

	// GetLastSync returns the time of the last successful pass of a domain.
	// Returns the zero time if the domain was never synchronized
	GetLastSync(ctx context.Context, domain string) (time.Time, error)
}
