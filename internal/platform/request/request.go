// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/validate"
	"github.com/taibuivan/serieshub/pkg/convert"
)

/*
DecodeJSON reads at most limit bytes of the request body and decodes them
into the target structure.

Parameters:
  - writer: http.ResponseWriter (Needed by http.MaxBytesReader)
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)
  - limit: int64

Returns:
  - error: apperr VALIDATION_ERROR when the body exceeds the limit,
    validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}, limit int64) error {
	if err := json.NewDecoder(http.MaxBytesReader(writer, request.Body, limit)).Decode(target); err != nil {
		if exceeded(err) {
			return tooLarge(limit)
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a numeric URL parameter.

Malformed values yield 0, which the domain validators reject as a
non-positive identifier.
*/
func ID(request *http.Request, name string) int64 {
	return convert.ToInt64(chi.URLParam(request, name))
}

/*
ReadBody reads a raw request body of at most limit bytes.

Parameters:
  - writer: http.ResponseWriter (Needed by http.MaxBytesReader)
  - request: *http.Request
  - limit: int64

Returns:
  - []byte: The body
  - error: apperr VALIDATION_ERROR when the body exceeds the limit
*/
func ReadBody(writer http.ResponseWriter, request *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, limit))
	if err != nil {
		if exceeded(err) {
			return nil, tooLarge(limit)
		}
		return nil, apperr.ValidationError("Request body could not be read")
	}
	return body, nil
}

func exceeded(err error) bool {
	var maxBytes *http.MaxBytesError
	return errors.As(err, &maxBytes)
}

func tooLarge(limit int64) error {
	return apperr.ValidationError(fmt.Sprintf("Request body exceeds %d bytes", limit))
}
