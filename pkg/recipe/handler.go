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

package recipe

import (
	"errors"
	"log/slog"
	"net/http"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/serializer"
	"github.com/nutribot/nutribot/pkg/server"
)

// MatchRequest is the body of POST /api/recipes.
type MatchRequest struct {
	Ingredients []string `json:"ingredients" yaml:"ingredients" validate:"max=64"`
}

// HandleRecipes handles POST /api/recipes. The body is
// {"ingredients": [...]} as JSON or YAML and the response is a JSON array
// of recipes, empty when nothing matches. Unknown tags are not an error.
func (m *Matcher) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, nberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	var req MatchRequest
	if err := serializer.DecodeBody(w, r, &req); err != nil {
		msg := "Invalid recipe request"
		if errors.Is(err, serializer.ErrEmptyBody) {
			msg = "Recipe request body cannot be empty"
		}
		server.WriteError(w, r, http.StatusBadRequest, nberrors.ErrCodeInvalidRequest,
			msg, false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if err := server.ValidateRequest(&req, nberrors.ErrCodeInvalidRequest); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe request", nil)
		return
	}

	if unknown := m.UnknownTags(req.Ingredients); len(unknown) > 0 {
		unknownIngredients.Add(float64(len(unknown)))
		slog.Debug("ignoring unknown ingredients",
			"requestID", server.RequestID(r.Context()),
			"ingredients", unknown,
		)
	}

	recipes := m.Match(req.Ingredients)
	recipeMatches.Observe(float64(len(recipes)))

	serializer.RespondJSON(w, http.StatusOK, recipes)
}
