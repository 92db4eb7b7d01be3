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

// Package nutrition computes daily energy and macronutrient targets from a
// personal profile.
//
// BMR uses the Mifflin-St Jeor equation (male variant). TDEE applies an
// activity multiplier and the target applies a goal multiplier. Protein is
// 2.2 g per kg of body weight, fat is 25% of the target, and carbohydrates
// fill whatever energy remains:
//
//	p, err := nutrition.NewProfile(30, 70, 175, "moderate", "maintenance")
//	if err != nil { ... }
//	t, err := nutrition.Compute(*p)
//	// t.BMR=1649 t.TDEE=2556 t.TargetCalories=2556 t.Protein=154 t.Fat=71 t.Carbs=325
//
// Activity levels and goals are closed sets. Keys are case-insensitive and
// anything else fails with UNKNOWN_ENUM. Non-positive or non-finite
// measurements fail with INVALID_INPUT.
//
// Profiles where protein and fat alone exceed the target keep their negative
// carbohydrate figure and carry a NEGATIVE_CARB_TARGET warning; see
// Targets.Advisory.
//
// Compute is a pure function and safe for concurrent use.
package nutrition
