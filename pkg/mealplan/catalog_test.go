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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/nutrition"
)

func testDefaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog_CoversEveryGoal(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	for _, g := range nutrition.Goals() {
		t.Run(string(g), func(t *testing.T) {
			p, err := c.PlanFor(g)
			require.NoError(t, err)
			assert.Equal(t, g, p.Goal)
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.Meals.Breakfast)
			assert.NotEmpty(t, p.Meals.Lunch)
			assert.NotEmpty(t, p.Meals.Dinner)
			assert.Len(t, p.Meals.Snacks, SnacksPerPlan)
			for _, s := range p.Meals.Snacks {
				assert.Contains(t, s, "kcal")
			}
		})
	}
}

func TestDefaultCatalog_Contents(t *testing.T) {
	c := testDefaultCatalog(t)

	tests := []struct {
		goal      nutrition.Goal
		name      string
		breakfast string
		snack     string
	}{
		{nutrition.GoalWeightLoss, "Weight loss", "Oats (40g)", "Greek yogurt"},
		{nutrition.GoalMuscleGain, "Muscle gain", "3 scrambled eggs", "Protein shake"},
		{nutrition.GoalMaintenance, "Maintenance", "2 whole-grain toasts", "1 medium piece of fruit (120 kcal)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			p, err := c.PlanFor(tt.goal)
			require.NoError(t, err)
			assert.Equal(t, tt.name, p.Name)
			assert.True(t, strings.HasPrefix(p.Meals.Breakfast, tt.breakfast), p.Meals.Breakfast)
			assert.Contains(t, strings.Join(p.Meals.Snacks, "|"), tt.snack)
		})
	}
}

func TestPlanFor_UnknownGoal(t *testing.T) {
	c := testDefaultCatalog(t)

	_, err := c.PlanFor(nutrition.Goal("bulk"))
	require.Error(t, err)
	assert.Equal(t, nberrors.ErrCodeUnknownEnum, nberrors.CodeOf(err))
}

func TestPlanForKey(t *testing.T) {
	c := testDefaultCatalog(t)

	tests := []struct {
		key     string
		want    nutrition.Goal
		wantErr nberrors.ErrorCode
	}{
		{"weight_loss", nutrition.GoalWeightLoss, ""},
		{" Muscle_Gain ", nutrition.GoalMuscleGain, ""},
		{"MAINTENANCE", nutrition.GoalMaintenance, ""},
		{"unknown_value", "", nberrors.ErrCodeUnknownEnum},
		{"", "", nberrors.ErrCodeUnknownEnum},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := c.PlanForKey(tt.key)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, p)
				assert.Equal(t, tt.wantErr, nberrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Goal)
		})
	}
}

func TestPlanFor_ReturnsCopy(t *testing.T) {
	c := testDefaultCatalog(t)

	p, err := c.PlanFor(nutrition.GoalMaintenance)
	require.NoError(t, err)
	original := p.Meals.Snacks[0]

	p.Meals.Snacks[0] = "changed"
	p.Meals.Breakfast = "changed"

	again, err := c.PlanFor(nutrition.GoalMaintenance)
	require.NoError(t, err)
	assert.Equal(t, original, again.Meals.Snacks[0])
	assert.NotEqual(t, "changed", again.Meals.Breakfast)
}

func TestPlans_Order(t *testing.T) {
	plans := testDefaultCatalog(t).Plans()
	require.Len(t, plans, len(nutrition.Goals()))
	for i, g := range nutrition.Goals() {
		assert.Equal(t, g, plans[i].Goal)
	}
}

func TestPlanFor_Concurrent(t *testing.T) {
	c := testDefaultCatalog(t)
	want, err := c.PlanFor(nutrition.GoalWeightLoss)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.PlanFor(nutrition.GoalWeightLoss)
			if err != nil || got.Meals.Lunch != want.Meals.Lunch {
				errs <- "mismatched plan"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	plan := func(goal, snacks string) string {
		return `
  - goal: ` + goal + `
    name: n
    meals:
      breakfast: b
      lunch: l
      dinner: d
      snacks: ` + snacks
	}
	twoSnacks := `["a", "b"]`

	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "plans: [\n"},
		{"missing goal", "plans:" + plan("weight_loss", twoSnacks) + plan("muscle_gain", twoSnacks)},
		{"unknown goal", "plans:" + plan("bulk", twoSnacks)},
		{"duplicate goal", "plans:" + plan("weight_loss", twoSnacks) + plan("weight_loss", twoSnacks)},
		{"one snack", "plans:" + plan("weight_loss", `["a"]`) + plan("muscle_gain", twoSnacks) + plan("maintenance", twoSnacks)},
		{"empty meal", "plans:" + strings.Replace(plan("weight_loss", twoSnacks), "lunch: l", "lunch: \"\"", 1) +
			plan("muscle_gain", twoSnacks) + plan("maintenance", twoSnacks)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	data := `plans:
  - {goal: weight_loss, name: a, meals: {breakfast: b, lunch: l, dinner: d, snacks: [x, y]}}
  - {goal: muscle_gain, name: a, meals: {breakfast: b, lunch: l, dinner: d, snacks: [x, y]}}
  - {goal: maintenance, name: a, meals: {breakfast: b, lunch: l, dinner: d, snacks: [x, y]}}
`
	c, err := NewCatalog([]byte(data))
	require.NoError(t, err)
	assert.Len(t, c.Plans(), 3)
}
