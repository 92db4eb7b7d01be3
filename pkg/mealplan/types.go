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

import "github.com/nutribot/nutribot/pkg/nutrition"

// SnacksPerPlan is the number of snacks every plan carries.
const SnacksPerPlan = 2

// Meals is one day of meals. Each entry is free text with portion and
// approximate energy, e.g. "150g of baked fish ... (400 kcal)".
type Meals struct {
	Breakfast string   `json:"breakfast" yaml:"breakfast"`
	Lunch     string   `json:"lunch" yaml:"lunch"`
	Dinner    string   `json:"dinner" yaml:"dinner"`
	Snacks    []string `json:"snacks" yaml:"snacks"`
}

// MealPlan is the fixed daily plan for one goal.
type MealPlan struct {
	Goal        nutrition.Goal `json:"goal" yaml:"goal"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Meals       Meals          `json:"meals" yaml:"meals"`
}

// clone returns a deep copy so callers never share the catalog's slices.
func (p MealPlan) clone() MealPlan {
	p.Meals.Snacks = append([]string(nil), p.Meals.Snacks...)
	return p
}

type catalogDocument struct {
	Plans []MealPlan `yaml:"plans"`
}
