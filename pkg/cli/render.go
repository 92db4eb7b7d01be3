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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/nutribot/nutribot/pkg/mealplan"
	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/recipe"
)

const (
	noRecipesMessage = "No recipes match the selected ingredients. Try adding vegetables together with a protein such as chicken, eggs or fish."
	balanceTip       = "Tip: combine proteins with complex carbohydrates and vegetables for balanced meals."
)

func printTargets(w io.Writer, t *nutrition.Targets) {
	fmt.Fprintln(w, "\nNutrition analysis:")
	fmt.Fprintf(w, "  Basal metabolic rate (BMR):       %d kcal\n", t.BMR)
	fmt.Fprintf(w, "  Total daily energy expenditure:   %d kcal\n", t.TDEE)
	fmt.Fprintln(w, "\nDaily targets:")
	fmt.Fprintf(w, "  Calories:      %d kcal\n", t.TargetCalories)
	fmt.Fprintf(w, "  Protein:       %d g\n", t.Protein)
	fmt.Fprintf(w, "  Fat:           %d g\n", t.Fat)
	fmt.Fprintf(w, "  Carbohydrates: %d g\n", t.Carbs)
	for _, warn := range t.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warn.Message)
	}
}

func printMealPlan(w io.Writer, p *mealplan.MealPlan) {
	fmt.Fprintf(w, "\nMeal plan: %s\n", p.Name)
	fmt.Fprintf(w, "%s\n", p.Description)
	fmt.Fprintln(w, "\nMeals of the day:")
	fmt.Fprintf(w, "  Breakfast: %s\n", p.Meals.Breakfast)
	fmt.Fprintf(w, "  Lunch:     %s\n", p.Meals.Lunch)
	fmt.Fprintf(w, "  Dinner:    %s\n", p.Meals.Dinner)
	fmt.Fprintf(w, "  Snacks:    %s\n", strings.Join(p.Meals.Snacks, ", "))
}

func printRecipes(w io.Writer, recipes []recipe.Recipe) {
	fmt.Fprintln(w, "\nSuggested recipes:")
	if len(recipes) == 0 {
		fmt.Fprintf(w, "  %s\n", noRecipesMessage)
	}
	for _, r := range recipes {
		fmt.Fprintf(w, "  * %s (%d kcal, %s, %s)\n", r.Title, r.Calories, r.PrepTime, r.Difficulty.Label())
		fmt.Fprintf(w, "    %s\n", r.Description)
		fmt.Fprintf(w, "    Ingredients: %s\n", strings.Join(r.Ingredients, ", "))
		for i, step := range r.Instructions {
			fmt.Fprintf(w, "    %d. %s\n", i+1, step)
		}
	}
	fmt.Fprintf(w, "\n%s\n", balanceTip)
}
