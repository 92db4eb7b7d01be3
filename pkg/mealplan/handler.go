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

package mealplan

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nutribot/nutribot/pkg/defaults"
	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/serializer"
	"github.com/nutribot/nutribot/pkg/server"
)

// GoalPathValue is the path wildcard that carries the goal key.
const GoalPathValue = "goal"

// HandleMealPlan handles GET /api/meal-plan/{goal}.
// An unknown goal is a 400 with code UNKNOWN_ENUM.
func (c *Catalog) HandleMealPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, nberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	key := r.PathValue(GoalPathValue)
	plan, err := c.PlanForKey(key)
	if err != nil {
		planLookups.WithLabelValues("unknown").Inc()
		server.WriteErrorFromErr(w, r, err, "Invalid goal", nil)
		return
	}
	planLookups.WithLabelValues(string(plan.Goal)).Inc()

	slog.Debug("serving meal plan",
		"requestID", server.RequestID(r.Context()),
		"goal", plan.Goal,
	)

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, plan)
}
