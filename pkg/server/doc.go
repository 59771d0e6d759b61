// Copyright (c) 2025, Pastrylab.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP host for the equilibra API.
//
// The server is route-agnostic: handlers are injected through Config.Handlers
// and wrapped with a common middleware chain. The API surface itself lives in
// pkg/api, which registers its routes here.
//
// # Architecture
//
// The server is a stateless HTTP host with the following components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id headers
//   - Panic recovery for resilience
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup with injected routes:
//
//	handlers := map[string]http.HandlerFunc{
//	    "/v1/analyze": analyzeHandler,
//	}
//
//	if err := server.Run(
//	    server.WithName("equilibrad"),
//	    server.WithHandler(handlers),
//	); err != nil {
//	    panic(err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200
//	cfg.RateLimitBurst = 400
//	cfg.Handlers = handlers
//
//	if err := server.Run(server.WithConfig(cfg)); err != nil {
//	    panic(err)
//	}
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format). If not
// provided, or not a valid UUID, the server generates one. The request ID is
// returned in the X-Request-Id response header and included in error
// responses for tracing.
//
// Rate limit status is reported on every response:
//
//	X-RateLimit-Limit: requests allowed per second
//	X-RateLimit-Remaining: tokens remaining in the bucket
//	X-RateLimit-Reset: Unix timestamp when the bucket refills
//
// When rate limited, the server returns 429 with a Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "ingredient not found",
//	  "details": {"ingredient": "polvo de hadas"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-23T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes are derived from the structured error codes in pkg/errors:
// invalid input maps to 400, unknown names to 404, rate limiting to 429,
// and everything unclassified to 500.
package server
