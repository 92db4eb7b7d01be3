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

package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nutribot/nutribot/pkg/defaults"
)

// ErrEmptyBody is returned by DecodeBody when the request carries no payload.
var ErrEmptyBody = errors.New("request body is empty")

// RespondJSON writes data as a JSON response with the given status code.
// It serializes before writing headers to ensure atomic responses - if
// serialization fails, a 500 error is returned instead of a partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// FormatFromContentType maps a Content-Type header to a Format.
// Empty and unrecognized media types map to JSON.
//
// Supported Content-Types:
//   - application/json
//   - application/x-yaml, application/yaml, text/yaml
func FormatFromContentType(contentType string) Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Extract media type (strip charset and other params)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeBody reads the request body, capped at defaults.MaxRequestBodyBytes,
// and decodes it into v according to the Content-Type header.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}

	switch FormatFromContentType(r.Header.Get("Content-Type")) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}

	return nil
}
