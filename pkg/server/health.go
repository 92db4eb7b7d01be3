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
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nutribot/nutribot/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	checkOK        = "ok"
)

// ReadinessCheck reports whether something the service depends on is usable.
// A non-nil error keeps /ready at 503.
type ReadinessCheck func(ctx context.Context) error

type namedCheck struct {
	name  string
	check ReadinessCheck
}

// WithReadinessCheck adds a check that /ready runs on every request, in
// registration order. A nil check is ignored.
func WithReadinessCheck(name string, check ReadinessCheck) Option {
	return func(s *Server) {
		if check == nil {
			return
		}
		s.checks = append(s.checks, namedCheck{name: name, check: check})
	}
}

// HealthResponse is the body of /health and /ready. Checks maps each readiness
// check name to "ok" or its error text.
type HealthResponse struct {
	Status    string            `json:"status" yaml:"status"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Reason    string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Checks    map[string]string `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// handleHealth handles GET /health. Liveness only: it never runs the checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now(),
	})
}

// handleReady handles GET /ready. It answers 503 until Start has run and
// while any registered check fails.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	started := s.ready
	s.mu.RUnlock()

	resp := HealthResponse{Timestamp: time.Now()}
	if !started {
		resp.Status = statusNotReady
		resp.Reason = "service is initializing"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	results, failed := s.runChecks(r.Context())
	resp.Checks = results
	if failed != "" {
		resp.Status = statusNotReady
		resp.Reason = failed + " check failed"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Status = statusReady
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// runChecks runs every check and returns the per-check results and the name
// of the first one that failed, if any.
func (s *Server) runChecks(ctx context.Context) (map[string]string, string) {
	if len(s.checks) == 0 {
		return nil, ""
	}

	results := make(map[string]string, len(s.checks))
	var failed string
	for _, c := range s.checks {
		if err := c.check(ctx); err != nil {
			slog.Warn("readiness check failed", "check", c.name, "error", err)
			results[c.name] = err.Error()
			if failed == "" {
				failed = c.name
			}
			continue
		}
		results[c.name] = checkOK
	}
	return results, failed
}
