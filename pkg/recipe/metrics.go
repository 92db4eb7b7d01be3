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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutribot_recipe_matches",
			Help:    "Number of recipes returned per match request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	unknownIngredients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutribot_recipe_unknown_ingredients_total",
			Help: "Total number of ingredient tags outside the vocabulary",
		},
	)
)
