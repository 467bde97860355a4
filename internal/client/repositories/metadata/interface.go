// Package metadata implements the string-keyed local store shared by the
// sync scheduler and the history store. Get reports an absent key as
// (nil, nil) so callers can treat "missing" and "present" uniformly.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
