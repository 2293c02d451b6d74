// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/internal/api"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pingWith(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

/*
TestReadiness verifies the status for healthy and failing dependencies.
*/
func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		checks []api.Check
		status int
		body   string
	}{
		{"no_checks", nil, http.StatusOK, `"ready"`},
		{"all_healthy", []api.Check{{Name: "postgres", Ping: pingWith(nil)}, {Name: "redis", Ping: pingWith(nil)}}, http.StatusOK, `"ready"`},
		{"redis_down", []api.Check{{Name: "postgres", Ping: pingWith(nil)}, {Name: "redis", Ping: pingWith(errors.New("dial tcp: refused"))}}, http.StatusServiceUnavailable, "dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(discard(), tt.checks...)

			recorder := httptest.NewRecorder()
			readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.body)
		})
	}
}

/*
TestLiveness verifies that the liveness check ignores dependencies.
*/
func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(discard(), api.Check{Name: "postgres", Ping: pingWith(errors.New("down"))})

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "serieshub-api")
}
