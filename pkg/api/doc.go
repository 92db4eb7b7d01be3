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

// Package api wires the nutrition, meal plan and recipe handlers into the
// reusable pkg/server HTTP server.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /api/calculate         - daily energy and macro targets for a profile
//   - GET  /api/meal-plan/{goal}  - the meal plan for weight_loss, muscle_gain or maintenance
//   - POST /api/recipes           - recipes matching {"ingredients": [...]}
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// "/" serves the browser page from STATIC_DIR, or ./public when it exists.
//
// Example:
//
//	curl -X POST http://localhost:8080/api/calculate \
//	  -H "Content-Type: application/json" \
//	  -d '{"age":30,"weight":70,"height":175,"activity":"moderate","goal":"maintenance"}'
//
// # Configuration
//
// Environment variables, optionally from a .env file:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: debug, info, warn, error
//   - RATE_LIMIT, RATE_LIMIT_BURST: token bucket settings
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown bound
//   - STATIC_DIR: directory served at "/"
//   - CORS_ALLOWED_ORIGINS: comma-separated origins
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutribot/nutribot/pkg/api.version=1.0.0'"
package api
