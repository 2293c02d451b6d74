// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package imaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// # Image Service

// Service processes uploads and manages their objects.
type Service struct {
	processor *Processor
	store     ObjectStore
	logger    *slog.Logger
}

// NewService wires a processor to an object store.
func NewService(processor *Processor, store ObjectStore, logger *slog.Logger) *Service {
	return &Service{processor: processor, store: store, logger: logger}
}

/*
ProcessAndSave encodes the upload and stores it for the series.

Parameters:
  - context: context.Context
  - data: []byte (raw upload)
  - seriesID: int64

Returns:
  - string: The object key to persist on the series
  - error: Decode, encode or storage failures
*/
func (service *Service) ProcessAndSave(context context.Context, data []byte, seriesID int64) (string, error) {
	encoded, err := service.processor.Process(data)
	if err != nil {
		return "", err
	}

	key := ObjectKey(seriesID, encoded)
	if err := service.store.Put(context, key, encoded, ContentType); err != nil {
		return "", err
	}

	service.logger.DebugContext(context, "series_image_stored",
		slog.Int64("series_id", seriesID),
		slog.String("key", key),
		slog.Int("bytes", len(encoded)),
	)

	return key, nil
}

// Delete removes a stored image. Keys outside the series prefix are refused.
func (service *Service) Delete(context context.Context, path string) error {
	if !strings.HasPrefix(path, "series/") {
		return fmt.Errorf("imaging: refusing to delete foreign key %q", path)
	}
	return service.store.Delete(context, path)
}
