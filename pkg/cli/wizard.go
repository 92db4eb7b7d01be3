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
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nutribot/nutribot/pkg/mealplan"
	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/recipe"
)

// wizard walks the user through profile entry, targets, the meal plan and
// recipe suggestions.
type wizard struct {
	p       *prompter
	out     io.Writer
	calc    *nutrition.Calculator
	catalog *mealplan.Catalog
	matcher *recipe.Matcher
}

func runWizard(ctx context.Context, in io.Reader, out io.Writer) error {
	catalog, err := mealplan.DefaultCatalog()
	if err != nil {
		return err
	}

	w := &wizard{
		p:       newPrompter(in, out),
		out:     out,
		calc:    nutrition.NewCalculator(),
		catalog: catalog,
		matcher: recipe.DefaultMatcher(),
	}
	return w.run(ctx)
}

func (w *wizard) run(ctx context.Context) error {
	fmt.Fprintln(w.out, "\nNutriBot - Healthy Eating Advisor")
	fmt.Fprintln(w.out)

	profile, err := w.collectProfile()
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, "\nProfile saved.")
	if err := ctx.Err(); err != nil {
		return err
	}

	targets, err := w.calc.Calculate(*profile)
	if err != nil {
		return err
	}
	printTargets(w.out, targets)

	plan, err := w.catalog.PlanFor(profile.Goal)
	if err != nil {
		return err
	}
	printMealPlan(w.out, plan)
	fmt.Fprintln(w.out)

	show, err := w.p.confirm("Would you like to see specific recipes?", true)
	if err != nil {
		return err
	}
	if !show {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	selected, err := w.p.chooseMany("Which ingredients do you have available?", recipe.GetIngredients())
	if err != nil {
		return err
	}
	slog.Debug("matching recipes", "ingredients", selected)

	printRecipes(w.out, w.matcher.Match(selected))
	return nil
}

func (w *wizard) collectProfile() (*nutrition.Profile, error) {
	age, err := w.p.askPositiveInt("What is your age?", "Please enter a valid age")
	if err != nil {
		return nil, err
	}
	weight, err := w.p.askPositiveFloat("What is your current weight (kg)?", "Please enter a valid weight")
	if err != nil {
		return nil, err
	}
	height, err := w.p.askPositiveFloat("What is your height (cm)?", "Please enter a valid height")
	if err != nil {
		return nil, err
	}

	levels := nutrition.ActivityLevels()
	keys, labels := make([]string, len(levels)), make([]string, len(levels))
	for i, l := range levels {
		keys[i], labels[i] = string(l), l.Label()
	}
	ai, err := w.p.choose("Physical activity level:", keys, labels)
	if err != nil {
		return nil, err
	}

	goals := nutrition.Goals()
	keys, labels = make([]string, len(goals)), make([]string, len(goals))
	for i, g := range goals {
		keys[i], labels[i] = string(g), g.Label()
	}
	gi, err := w.p.choose("What is your main goal?", keys, labels)
	if err != nil {
		return nil, err
	}

	p := &nutrition.Profile{
		Age:      age,
		Weight:   weight,
		Height:   height,
		Activity: levels[ai],
		Goal:     goals[gi],
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
