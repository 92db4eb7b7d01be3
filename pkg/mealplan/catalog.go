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
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/nutrition"
)

var (
	//go:embed data/mealplans.yaml
	catalogData []byte

	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// Catalog maps every goal to exactly one meal plan. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	plans map[nutrition.Goal]MealPlan
}

// DefaultCatalog returns the catalog built from embedded data.
// It is parsed once and cached.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = NewCatalog(catalogData)
	})
	return defaultCatalog, defaultCatalogErr
}

// NewCatalog parses a YAML catalog document and checks that every goal has
// exactly one complete plan.
func NewCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan catalog: %w", err)
	}

	c := &Catalog{plans: make(map[nutrition.Goal]MealPlan, len(doc.Plans))}
	for i, p := range doc.Plans {
		goal, err := nutrition.ParseGoal(string(p.Goal))
		if err != nil {
			return nil, fmt.Errorf("plan %d: %w", i, err)
		}
		p.Goal = goal

		if _, dup := c.plans[goal]; dup {
			return nil, fmt.Errorf("plan %d: duplicate plan for goal %s", i, goal)
		}
		if err := checkPlan(p); err != nil {
			return nil, fmt.Errorf("plan %d (%s): %w", i, goal, err)
		}
		c.plans[goal] = p
	}

	for _, g := range nutrition.Goals() {
		if _, ok := c.plans[g]; !ok {
			return nil, fmt.Errorf("no meal plan for goal %s", g)
		}
	}

	return c, nil
}

func checkPlan(p MealPlan) error {
	required := map[string]string{
		"name":      p.Name,
		"breakfast": p.Meals.Breakfast,
		"lunch":     p.Meals.Lunch,
		"dinner":    p.Meals.Dinner,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is empty", field)
		}
	}
	if len(p.Meals.Snacks) != SnacksPerPlan {
		return fmt.Errorf("expected %d snacks, got %d", SnacksPerPlan, len(p.Meals.Snacks))
	}
	return nil
}

// PlanFor returns a copy of the plan for goal. Goals outside the closed set
// fail with UNKNOWN_ENUM; there is no fallback plan.
func (c *Catalog) PlanFor(goal nutrition.Goal) (*MealPlan, error) {
	p, ok := c.plans[goal]
	if !ok {
		return nil, nberrors.NewWithContext(nberrors.ErrCodeUnknownEnum,
			fmt.Sprintf("unknown goal %q, supported values: %s", goal, strings.Join(nutrition.GetGoals(), ", ")),
			map[string]any{
				"field":   "goal",
				"value":   string(goal),
				"allowed": nutrition.GetGoals(),
			})
	}
	out := p.clone()
	return &out, nil
}

// PlanForKey parses key as a goal and returns its plan.
func (c *Catalog) PlanForKey(key string) (*MealPlan, error) {
	goal, err := nutrition.ParseGoal(key)
	if err != nil {
		return nil, err
	}
	return c.PlanFor(goal)
}

// Plans returns copies of all plans in goal declaration order.
func (c *Catalog) Plans() []MealPlan {
	out := make([]MealPlan, 0, len(c.plans))
	for _, g := range nutrition.Goals() {
		out = append(out, c.plans[g].clone())
	}
	return out
}
