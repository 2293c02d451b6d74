// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/serieshub/internal/platform/constants"
	"github.com/taibuivan/serieshub/internal/platform/respond"
)

// readinessTimeout bounds the whole set of dependency checks.
const readinessTimeout = 3 * time.Second

// Check is one readiness dependency.
type Check struct {
	Name string
	Ping func(context context.Context) error
}

type checkResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	checks []Check
	logger *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(logger *slog.Logger, checks ...Check) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checks: checks, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness answers 200 while the process runs.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness answers 503 as soon as one dependency fails.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	status, httpStatus := "ready", http.StatusOK
	results := make([]checkResult, 0, len(handler.checks))

	for _, check := range handler.checks {
		result := checkResult{Name: check.Name, OK: true}
		if err := check.Ping(ctx); err != nil {
			result.OK, result.Error = false, err.Error()
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			handler.logger.ErrorContext(ctx, "readiness_check_failed",
				slog.String("dependency", check.Name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}
