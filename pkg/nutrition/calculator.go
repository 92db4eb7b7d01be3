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
	"fmt"
	"math"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
)

// Energy density of each macronutrient in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarbs   = 4
)

// Macro split constants.
const (
	// proteinPerKg is grams of protein per kilogram of body weight.
	proteinPerKg = 2.2
	// fatShare is the fraction of target calories assigned to fat.
	fatShare = 0.25
)

// Targets are the daily energy and macronutrient targets derived from a Profile.
// Carbs is the balancing term, so MacroCalories stays within a few kcal of
// TargetCalories after rounding.
type Targets struct {
	BMR            int       `json:"bmr" yaml:"bmr"`
	TDEE           int       `json:"tdee" yaml:"tdee"`
	TargetCalories int       `json:"targetCalories" yaml:"targetCalories"`
	Protein        int       `json:"protein" yaml:"protein"`
	Fat            int       `json:"fat" yaml:"fat"`
	Carbs          int       `json:"carbs" yaml:"carbs"`
	Warnings       []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Warning is an advisory attached to otherwise valid Targets.
type Warning struct {
	Code          nberrors.ErrorCode `json:"code" yaml:"code"`
	Message       string             `json:"message" yaml:"message"`
	ShortfallKcal int                `json:"shortfallKcal,omitempty" yaml:"shortfallKcal,omitempty"`
}

// MacroCalories returns the energy of the macro split in kcal.
func (t *Targets) MacroCalories() int {
	return t.Protein*kcalPerGramProtein + t.Fat*kcalPerGramFat + t.Carbs*kcalPerGramCarbs
}

// HasWarning reports whether a warning with the given code is attached.
func (t *Targets) HasWarning(code nberrors.ErrorCode) bool {
	for _, w := range t.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Advisory returns the first warning as a structured error, or nil.
// The targets remain usable either way.
func (t *Targets) Advisory() error {
	if len(t.Warnings) == 0 {
		return nil
	}
	w := t.Warnings[0]
	return nberrors.NewWithContext(w.Code, w.Message, map[string]any{
		"shortfallKcal": w.ShortfallKcal,
	})
}

// Compute derives energy and macro targets with the Mifflin-St Jeor equation:
//
//	bmr            = 10*weight + 6.25*height - 5*age + 5
//	tdee           = bmr * activity multiplier
//	targetCalories = round(tdee * goal multiplier)
//	protein        = round(weight * 2.2)
//	fat            = round(targetCalories * 0.25 / 9)
//	carbs          = round((targetCalories - (protein*4 + fat*9)) / 4)
//
// Carbs below zero are reported, not clamped: Carbs keeps the negative value and
// a NEGATIVE_CARB_TARGET warning is attached.
func Compute(p Profile) (*Targets, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age) + 5
	if bmr <= 0 {
		return nil, nberrors.NewWithContext(nberrors.ErrCodeInvalidInput,
			fmt.Sprintf("profile yields a non-positive BMR (%.2f kcal)", bmr),
			map[string]any{
				"age":    p.Age,
				"weight": p.Weight,
				"height": p.Height,
			})
	}

	tdee := bmr * p.Activity.Multiplier()
	target := round(tdee * p.Goal.Multiplier())

	protein := round(p.Weight * proteinPerKg)
	fat := round(float64(target) * fatShare / kcalPerGramFat)
	remaining := target - (protein*kcalPerGramProtein + fat*kcalPerGramFat)
	carbs := round(float64(remaining) / kcalPerGramCarbs)

	t := &Targets{
		BMR:            round(bmr),
		TDEE:           round(tdee),
		TargetCalories: target,
		Protein:        protein,
		Fat:            fat,
		Carbs:          carbs,
	}

	if carbs < 0 {
		t.Warnings = append(t.Warnings, Warning{
			Code: nberrors.ErrCodeNegativeCarbTarget,
			Message: fmt.Sprintf("protein and fat alone exceed the %d kcal target by %d kcal; carbohydrate target is %dg",
				target, -remaining, carbs),
			ShortfallKcal: -remaining,
		})
	}

	return t, nil
}

// round rounds half up, saturating at the int32 range. NaN rounds to zero.
func round(x float64) int {
	r := math.Floor(x + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}
