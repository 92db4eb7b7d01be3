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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code nberrors.ErrorCode
		want int
	}{
		{"invalid input", nberrors.ErrCodeInvalidInput, http.StatusBadRequest},
		{"unknown enum", nberrors.ErrCodeUnknownEnum, http.StatusBadRequest},
		{"invalid request", nberrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"not found", nberrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", nberrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", nberrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", nberrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"internal", nberrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", nberrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code nberrors.ErrorCode
		want bool
	}{
		{"invalid input", nberrors.ErrCodeInvalidInput, false},
		{"unknown enum", nberrors.ErrCodeUnknownEnum, false},
		{"invalid request", nberrors.ErrCodeInvalidRequest, false},
		{"not found", nberrors.ErrCodeNotFound, false},
		{"method not allowed", nberrors.ErrCodeMethodNotAllowed, false},
		{"unavailable", nberrors.ErrCodeUnavailable, true},
		{"rate limit", nberrors.ErrCodeRateLimitExceeded, true},
		{"internal", nberrors.ErrCodeInternal, true},
		{"unknown defaults false", nberrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got["a"].(int) != 1 || got["b"].(int) != 2 {
			t.Fatalf("expected a=1 b=2, got %#v", got)
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
		if a["shared"] != "old" {
			t.Fatal("inputs must not be modified")
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, nberrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(nberrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", nberrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_UnknownEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/meal-plan/keto", nil)
	w := httptest.NewRecorder()

	err := nberrors.NewWithContext(nberrors.ErrCodeUnknownEnum, `unknown goal "keto"`,
		map[string]any{"field": "goal", "value": "keto"})

	WriteErrorFromErr(w, req, err, "fallback", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}
	if resp.Code != string(nberrors.ErrCodeUnknownEnum) {
		t.Fatalf("expected code %q, got %q", nberrors.ErrCodeUnknownEnum, resp.Code)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	if resp.Details["value"].(string) != "keto" {
		t.Fatalf("expected value=keto, got %#v", resp.Details)
	}
	if _, ok := resp.Details["error"]; ok {
		t.Fatal("no cause, so no error detail expected")
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := errors.New("catalog not loaded")
	err := nberrors.WrapWithContext(nberrors.ErrCodeUnavailable, "service unavailable", cause, map[string]any{"component": "catalog"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}

	if resp.Message != "service unavailable" {
		t.Fatalf("expected message %q, got %q", "service unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details["component"].(string) != "catalog" {
		t.Fatalf("expected component=catalog, got %#v", resp.Details["component"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "catalog not loaded" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, errors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(nberrors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", nberrors.ErrCodeInternal, resp.Code)
	}
	if resp.Message != "fallback" {
		t.Fatalf("expected fallback message, got %q", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details["x"].(string) != "y" || resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details x=y error=boom, got %#v", resp.Details)
	}
}
