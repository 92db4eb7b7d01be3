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

package nutrition

import (
	"errors"
	"log/slog"
	"net/http"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/serializer"
	"github.com/nutribot/nutribot/pkg/server"
)

// CalculateRequest is the body of POST /api/calculate.
type CalculateRequest struct {
	Age      int     `json:"age" yaml:"age" validate:"required,gt=0"`
	Weight   float64 `json:"weight" yaml:"weight" validate:"required,gt=0"`
	Height   float64 `json:"height" yaml:"height" validate:"required,gt=0"`
	Activity string  `json:"activity" yaml:"activity" validate:"required"`
	Goal     string  `json:"goal" yaml:"goal" validate:"required"`
}

// Profile parses the enum keys and validates the measurements.
func (r *CalculateRequest) Profile() (*Profile, error) {
	return NewProfile(r.Age, r.Weight, r.Height, r.Activity, r.Goal)
}

// Calculator serves nutrition target calculations over HTTP.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes targets for p and records metrics.
func (c *Calculator) Calculate(p Profile) (*Targets, error) {
	t, err := Compute(p)
	if err != nil {
		return nil, err
	}

	calculationsTotal.WithLabelValues(string(p.Goal), string(p.Activity)).Inc()
	if t.HasWarning(nberrors.ErrCodeNegativeCarbTarget) {
		negativeCarbWarnings.Inc()
	}
	return t, nil
}

// HandleCalculate handles POST /api/calculate. The body is JSON or YAML
// ({age, weight, height, activity, goal}) and the response is Targets as JSON.
// A negative carbohydrate target is still a 200; the warning is in the body.
func (c *Calculator) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, nberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	var req CalculateRequest
	if err := serializer.DecodeBody(w, r, &req); err != nil {
		msg := "Invalid calculation request"
		if errors.Is(err, serializer.ErrEmptyBody) {
			msg = "Calculation request body cannot be empty"
		}
		server.WriteError(w, r, http.StatusBadRequest, nberrors.ErrCodeInvalidRequest,
			msg, false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if err := server.ValidateRequest(&req, nberrors.ErrCodeInvalidInput); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid calculation request", nil)
		return
	}

	p, err := req.Profile()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid profile", nil)
		return
	}

	slog.Debug("calculating targets",
		"requestID", server.RequestID(r.Context()),
		"goal", p.Goal,
		"activity", p.Activity,
	)

	t, err := c.Calculate(*p)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to calculate targets", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, t)
}
