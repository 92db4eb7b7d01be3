// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package server provides the HTTP server shared by the nutribot API.
//
// Callers register domain handlers by pattern and the package adds the
// system endpoints, the middleware chain, CORS and graceful shutdown:
//
//	s := server.New(
//	    server.WithName("nutribotd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/calculate": calc.HandleCalculate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil { ... }
//
// # Middleware
//
// Registered handlers run behind, outermost first: Prometheus RED metrics,
// API version negotiation (Accept: application/vnd.nutribot.v1+json),
// request IDs (X-Request-Id, UUID), panic recovery, a token bucket rate
// limiter (golang.org/x/time/rate) and debug request logging.
//
// # System endpoints
//
//	GET /health   liveness, always 200
//	GET /ready    200 once serving, 503 during startup and shutdown
//	GET /metrics  Prometheus exposition
//
// "/" serves Config.StaticDir when set, otherwise a JSON listing of routes.
//
// # Errors
//
// Every error is written as:
//
//	{
//	  "code": "UNKNOWN_ENUM",
//	  "message": "unknown goal \"keto\", supported values: weight_loss, muscle_gain, maintenance",
//	  "details": {"field": "goal", "value": "keto"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps structured error codes to statuses with
// HTTPStatusFromCode: input and enum failures are 400, rate limiting 429,
// and anything unclassified 500.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST, STATIC_DIR and CORS_ALLOWED_ORIGINS (comma separated).
package server
