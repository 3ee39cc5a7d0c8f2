// Package kv defines the key-value persistence collaborator the
// repositories are built on: a synchronous string store with no
// transactional guarantees across keys.
package kv

// Store is a synchronous key-value store. Get reports absence through its
// second return value; a missing key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
