//go:build !deadlock
// +build !deadlock

// Package sync provides the mutual-exclusion primitives used by this module.
// Building with the "deadlock" tag swaps in deadlock-detecting variants.
package sync

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}
