package snapshot

import "context"

// Repository stores one serialized cart snapshot per session key. Save
// replaces any prior snapshot wholesale; there is no merge and no versioning.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
