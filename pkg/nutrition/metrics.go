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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutribot_nutrition_calculations_total",
			Help: "Total number of successful nutrition target calculations",
		},
		[]string{"goal", "activity"},
	)

	negativeCarbWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutribot_nutrition_negative_carb_warnings_total",
			Help: "Total number of calculations whose carbohydrate target came out negative",
		},
	)
)
