// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil stores and reads the request-scoped values the middleware chain
attaches: the correlation id, the enriched logger and the verified caller.

Readers never fail. A missing value yields the zero value, or the supplied
fallback for loggers, so background work and tests can run without the HTTP
middleware in front of them.
*/
package ctxutil

import (
	stdctx "context"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/ctxkey"
	"github.com/taibuivan/serieshub/internal/platform/sec"
)

// # Request Tracing

// WithRequestID attaches the correlation id of the current request.
func WithRequestID(context stdctx.Context, id string) stdctx.Context {
	return stdctx.WithValue(context, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation id, or "" outside a request.
func GetRequestID(context stdctx.Context) string {
	id, _ := context.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger attaches a logger already enriched with request attributes.
func WithLogger(context stdctx.Context, logger *slog.Logger) stdctx.Context {
	return stdctx.WithValue(context, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request logger, or [slog.Default] when none is attached.
func GetLogger(context stdctx.Context) *slog.Logger {
	return LoggerOr(context, slog.Default())
}

/*
LoggerOr returns the request logger when one is attached, otherwise fallback.

Commands hold a process logger for work that runs outside a request. Audit
events go through this helper so that, inside a request, they carry the
request_id and user_id the middleware added.
*/
func LoggerOr(context stdctx.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := context.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

// # Identity & Access

// WithAuthUser attaches the verified token claims.
func WithAuthUser(context stdctx.Context, user *sec.AuthClaims) stdctx.Context {
	return stdctx.WithValue(context, ctxkey.KeyUser, user)
}

// GetAuthUser returns the verified claims, or nil for anonymous callers.
func GetAuthUser(context stdctx.Context) *sec.AuthClaims {
	claims, _ := context.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	return claims
}
