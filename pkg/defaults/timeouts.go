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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// HandlerTimeout bounds a single API request end to end.
	HandlerTimeout = 10 * time.Second

	// CatalogCacheTTL is the cache duration advertised for meal plan responses.
	CatalogCacheTTL = 10 * time.Minute
)

// Request limits.
const (
	// MaxRequestBodyBytes caps JSON/YAML request bodies.
	MaxRequestBodyBytes = 64 << 10

	// MaxIngredientsPerRequest caps the ingredient list of a recipe request.
	MaxIngredientsPerRequest = 64
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Rate limiting defaults for the API server.
const (
	// RateLimit is the sustained request rate in requests per second.
	RateLimit = 100

	// RateLimitBurst is the token bucket size.
	RateLimitBurst = 200
)
