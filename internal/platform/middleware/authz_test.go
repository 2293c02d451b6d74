// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/internal/platform/middleware"
	"github.com/taibuivan/serieshub/internal/platform/sec"
)

type fakeVerifier map[string]*sec.AuthClaims

func (verifier fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := verifier[token]; ok {
		return claims, nil
	}
	return nil, errors.New("unknown token")
}

/*
TestAuthenticateAndRequireRole verifies the status returned for each caller.
*/
func TestAuthenticateAndRequireRole(t *testing.T) {
	verifier := fakeVerifier{
		"admin-token":  {UserID: "1", Role: string(sec.RoleAdmin)},
		"reader-token": {UserID: "2", Role: string(sec.RoleReader)},
	}

	protected := middleware.Authenticate(verifier)(
		middleware.RequireRole(sec.RoleAdmin)(
			http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) { writer.WriteHeader(http.StatusNoContent) }),
		),
	)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"malformed", "Token admin-token", http.StatusUnauthorized},
		{"invalid", "Bearer forged", http.StatusUnauthorized},
		{"insufficient_role", "Bearer reader-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodDelete, "/api/v1/series/1", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			protected.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
