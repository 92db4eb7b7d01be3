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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/server"
)

func getMealPlan(t *testing.T, method, goal string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/meal-plan/"+goal, nil)
	req.SetPathValue(GoalPathValue, goal)
	w := httptest.NewRecorder()
	testDefaultCatalog(t).HandleMealPlan(w, req)
	return w
}

func TestHandleMealPlan(t *testing.T) {
	w := getMealPlan(t, http.MethodGet, "muscle_gain")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=")

	var got MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, nutrition.GoalMuscleGain, got.Goal)
	assert.Equal(t, "Muscle gain", got.Name)
	assert.Len(t, got.Meals.Snacks, 2)
}

func TestHandleMealPlan_JSONShape(t *testing.T) {
	w := getMealPlan(t, http.MethodGet, "weight_loss")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "weight_loss", raw["goal"])
	meals, ok := raw["meals"].(map[string]any)
	require.True(t, ok)
	for _, k := range []string{"breakfast", "lunch", "dinner", "snacks"} {
		assert.Contains(t, meals, k)
	}
}

func TestHandleMealPlan_UnknownGoal(t *testing.T) {
	w := getMealPlan(t, http.MethodGet, "unknown_value")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(nberrors.ErrCodeUnknownEnum), resp.Code)
	assert.False(t, resp.Retryable)
}

func TestHandleMealPlan_MethodNotAllowed(t *testing.T) {
	w := getMealPlan(t, http.MethodPost, "maintenance")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}
