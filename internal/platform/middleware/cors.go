// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/serieshub/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

// OriginPolicy decides which browser origins may call the API.
type OriginPolicy struct {
	// AllowAll is set in development.
	AllowAll bool

	// Extra lists exact origins allowed in addition to the trusted domain.
	Extra []string
}

// NewOriginPolicy parses a comma separated list of extra origins.
func NewOriginPolicy(development bool, extraOrigins string) OriginPolicy {
	policy := OriginPolicy{AllowAll: development}
	for _, origin := range strings.Split(extraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			policy.Extra = append(policy.Extra, origin)
		}
	}
	return policy
}

// Allows reports whether the origin passes the policy.
func (policy OriginPolicy) Allows(origin string) bool {
	if policy.AllowAll {
		return true
	}
	for _, extra := range policy.Extra {
		if origin == extra {
			return true
		}
	}
	host := origin
	if _, rest, found := strings.Cut(origin, "://"); found {
		host = rest
	}
	return host == constants.TrustedOriginSuffix || strings.HasSuffix(host, "."+constants.TrustedOriginSuffix)
}

// CORS writes the CORS headers for allowed origins and answers pre-flight requests.
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if policy.Allows(origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", "Origin")
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
