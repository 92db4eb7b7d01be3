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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/serializer"
)

// WriteError writes a JSON ErrorResponse with the given status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to an ErrorResponse. Structured errors keep their
// code, message and context; anything else becomes INTERNAL with fallbackMessage.
// The cause, if any, is reported under details["error"].
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *nberrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, nberrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code nberrors.ErrorCode) int {
	switch code {
	case nberrors.ErrCodeInvalidInput, nberrors.ErrCodeUnknownEnum,
		nberrors.ErrCodeInvalidRequest, nberrors.ErrCodeNegativeCarbTarget:
		return http.StatusBadRequest
	case nberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case nberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case nberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case nberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code nberrors.ErrorCode) bool {
	switch code {
	case nberrors.ErrCodeUnavailable, nberrors.ErrCodeRateLimitExceeded, nberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries written over a's,
// or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
