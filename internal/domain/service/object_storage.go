package service

import "context"

// ObjectStorage stores binary objects and hands out download references.
type ObjectStorage interface {
	// Put writes data under key, replacing any previous object, and returns its download URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
