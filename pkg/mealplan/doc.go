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

// Package mealplan holds the fixed daily meal plan for each nutrition goal.
//
// The catalog is embedded as YAML and parsed once. Every goal in
// nutrition.Goals has exactly one plan with breakfast, lunch, dinner and two
// snacks. Lookups return copies, so the shared catalog cannot be changed.
//
//	catalog, err := mealplan.DefaultCatalog()
//	if err != nil {
//		return err
//	}
//	plan, err := catalog.PlanFor(nutrition.GoalMuscleGain)
//
// Goals outside the closed set fail with UNKNOWN_ENUM. There is no default
// plan.
package mealplan
