// Package nodeid decides which node ID a service instance generates IDs
// under.
package nodeid

import (
	"context"
	"errors"
)

var (
	// ErrExhausted means every node ID slot is held by another instance.
	ErrExhausted = errors.New("nodeid: no free node id")
	// ErrNotAcquired is returned by Release when nothing is held.
	ErrNotAcquired = errors.New("nodeid: no node id held")
)

// Provider hands out a node ID for the lifetime of the process.
type Provider interface {
	// Acquire returns the node ID to use. It is called once at startup.
	Acquire(ctx context.Context) (uint32, error)
	// Release gives the node ID back. It is called once at shutdown.
	Release(ctx context.Context) error
	// Lost is closed if the node ID stops being exclusively ours. A nil
	// channel means the ID can never be lost.
	Lost() <-chan struct{}
}

// Static always returns the configured node ID. Uniqueness across instances
// is the operator's responsibility.
type Static struct {
	ID uint32
}

func (s Static) Acquire(context.Context) (uint32, error) {
	return s.ID, nil
}

func (s Static) Release(context.Context) error {
	return nil
}

func (s Static) Lost() <-chan struct{} {
	return nil
}
