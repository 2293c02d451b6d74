// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
)

// # Read Service

// Service serves series lookups for the HTTP layer.
type Service struct {
	reader Reader
}

// NewService constructs a new [Service].
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

/*
GetSeries fetches a single series with its genres and titles.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Series: The hydrated series
  - error: apperr.NotFound, validation or storage failures
*/
func (service *Service) GetSeries(context context.Context, id int64) (*Series, error) {
	if err := ValidateID(FieldID, id); err != nil {
		return nil, err
	}
	return requireSeries(context, service.reader, id)
}
