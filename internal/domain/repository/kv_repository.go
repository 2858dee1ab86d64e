// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"sitesnap/internal/errors"
)

// ErrKeyNotFound is returned when a key has never been written or was removed.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueRepository is the on-device key-value storage the offline catalog
// and the token store persist to. Values are opaque bytes, usually JSON.
type KeyValueRepository interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
