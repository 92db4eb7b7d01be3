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

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutribot/nutribot/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort               = "PORT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit          = "RATE_LIMIT"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvStaticDir          = "STATIC_DIR"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server, keyed by ServeMux pattern
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// StaticDir, when set, is served at "/" unless a "/" handler is registered.
	StaticDir string

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults overridden by the environment.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:               "server",
		Version:            "undefined",
		Address:            "",
		Port:               8080,
		CORSAllowedOrigins: []string{"*"},
		RateLimit:          defaults.RateLimit,
		RateLimitBurst:     defaults.RateLimitBurst,
		ReadTimeout:        defaults.ServerReadTimeout,
		ReadHeaderTimeout:  defaults.ServerReadHeaderTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}

	if port, ok := envInt(EnvPort); ok && port > 0 {
		cfg.Port = port
	}

	if seconds, ok := envInt(EnvShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if limit, ok := envInt(EnvRateLimit); ok && limit > 0 {
		cfg.RateLimit = rate.Limit(limit)
	}

	if burst, ok := envInt(EnvRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	if dir := strings.TrimSpace(os.Getenv(EnvStaticDir)); dir != "" {
		cfg.StaticDir = dir
	}

	if origins := splitList(os.Getenv(EnvCORSAllowedOrigins)); len(origins) > 0 {
		cfg.CORSAllowedOrigins = origins
	}

	return cfg
}

func envInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring invalid integer environment variable", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
