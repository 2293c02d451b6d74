// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package imaging

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrStorageDisabled is returned by [DisabledStore] for every call.
var ErrStorageDisabled = errors.New("imaging: object storage is not configured")

// ContentType of every stored object.
const ContentType = "image/jpeg"

// ObjectStore persists encoded images under a key.
type ObjectStore interface {
	Put(context context.Context, key string, body []byte, contentType string) error
	Delete(context context.Context, key string) error
}

// ObjectKey derives a content addressed key: series/{id}/{hash}.jpg where
// hash is the first 16 hex digits of the BLAKE2b-256 digest.
func ObjectKey(seriesID int64, encoded []byte) string {
	digest := blake2b.Sum256(encoded)
	return fmt.Sprintf("series/%d/%x.jpg", seriesID, digest[:8])
}

// DisabledStore is used when no bucket is configured.
type DisabledStore struct{}

func (DisabledStore) Put(context.Context, string, []byte, string) error { return ErrStorageDisabled }

func (DisabledStore) Delete(context.Context, string) error { return ErrStorageDisabled }
