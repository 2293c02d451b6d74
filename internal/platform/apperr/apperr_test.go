// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

/*
TestStorage_PreservesCause verifies that the driver error survives wrapping.
*/
func TestStorage_PreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Storage("create series", cause)

	assert.Equal(t, apperr.CodeStorage, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "Failed to create series", err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain checks extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperr.NotFound("Series"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Series not found", ae.Message)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeValidation))
}

/*
TestAs_PlainError returns nil for errors outside the taxonomy.
*/
func TestAs_PlainError(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("boom")))
	assert.False(t, apperr.HasCode(nil, apperr.CodeNotFound))
}
