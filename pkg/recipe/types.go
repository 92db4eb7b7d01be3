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
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Ingredient is a tag from the fixed ingredient vocabulary.
type Ingredient string

const (
	IngredientChicken    Ingredient = "chicken"
	IngredientEggs       Ingredient = "eggs"
	IngredientRice       Ingredient = "rice"
	IngredientPasta      Ingredient = "pasta"
	IngredientVegetables Ingredient = "vegetables"
	IngredientFruits     Ingredient = "fruits"
	IngredientFish       Ingredient = "fish"
	IngredientMeat       Ingredient = "meat"
	IngredientLegumes    Ingredient = "legumes"
	IngredientDairy      Ingredient = "dairy"
	IngredientNuts       Ingredient = "nuts"
)

// ingredients is the vocabulary in prompt order.
var ingredients = []Ingredient{
	IngredientChicken,
	IngredientEggs,
	IngredientRice,
	IngredientPasta,
	IngredientVegetables,
	IngredientFruits,
	IngredientFish,
	IngredientMeat,
	IngredientLegumes,
	IngredientDairy,
	IngredientNuts,
}

// Ingredients returns a copy of the vocabulary in prompt order.
func Ingredients() []Ingredient {
	return slices.Clone(ingredients)
}

// GetIngredients returns the vocabulary as strings, in prompt order.
func GetIngredients() []string {
	out := make([]string, len(ingredients))
	for i, in := range ingredients {
		out[i] = string(in)
	}
	return out
}

// IsKnown reports whether i is part of the vocabulary.
func (i Ingredient) IsKnown() bool {
	return slices.Contains(ingredients, i)
}

// NormalizeIngredient trims and case-folds a raw tag.
func NormalizeIngredient(s string) Ingredient {
	return Ingredient(cases.Fold().String(strings.TrimSpace(s)))
}

// Difficulty is the preparation difficulty of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
)

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMedium: "Medium",
}

// IsValid reports whether d is a known difficulty.
func (d Difficulty) IsValid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

// Label returns the display name of d.
func (d Difficulty) Label() string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	return string(d)
}

// Recipe is a static catalog entry.
type Recipe struct {
	Title        string     `json:"title" yaml:"title"`
	Description  string     `json:"description" yaml:"description"`
	Ingredients  []string   `json:"ingredients" yaml:"ingredients"`
	Instructions []string   `json:"instructions" yaml:"instructions"`
	Calories     int        `json:"calories" yaml:"calories"`
	PrepTime     string     `json:"prepTime" yaml:"prepTime"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
}

func (r Recipe) clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	return r
}

// Rule yields Recipe when every tag in Requires is selected.
type Rule struct {
	Name     string       `json:"name" yaml:"name"`
	Requires []Ingredient `json:"requires" yaml:"requires"`
	Recipe   Recipe       `json:"recipe" yaml:"recipe"`
}

type ruleDocument struct {
	Rules []Rule `yaml:"rules"`
}
