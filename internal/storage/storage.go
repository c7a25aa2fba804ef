package storage

import "context"

// Gateway is the string key-value store the achievement engine persists
// through. Get reports ok == false for a key that has never been written.
type Gateway interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
