// Package kv holds the key-value backends the employee snapshot is written to.
// Values are opaque bytes; each Put replaces the whole value for its key.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal key-value store.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put inserts or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("kv: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}
