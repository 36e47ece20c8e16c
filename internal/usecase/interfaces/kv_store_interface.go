package interfaces

import "context"

// IKeyValueStore abstracts the device-local key/value facility.
//
// Get reports ok=false when no value exists for key. Set overwrites.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
