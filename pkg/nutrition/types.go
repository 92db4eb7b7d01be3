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
	"strings"

	"golang.org/x/text/cases"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
)

// normalizeKey folds case and trims whitespace so "Very_Active " parses as very_active.
// A Caser is stateful, so each call gets its own.
func normalizeKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ActivityLevel is the closed set of physical activity levels.
type ActivityLevel string

// ActivityLevel constants.
const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityLevels keeps declaration order for prompts and help text.
var activityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var activityLabels = map[ActivityLevel]string{
	ActivitySedentary:  "Sedentary (little or no exercise)",
	ActivityLight:      "Light (exercise 1-3 days/week)",
	ActivityModerate:   "Moderate (exercise 3-5 days/week)",
	ActivityActive:     "Active (exercise 6-7 days/week)",
	ActivityVeryActive: "Very active (intense daily exercise)",
}

// ParseActivityLevel parses a string into an ActivityLevel.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(normalizeKey(s))
	if !a.IsValid() {
		return "", unknownEnum("activity", s, GetActivityLevels())
	}
	return a, nil
}

// GetActivityLevels returns all activity levels from least to most active.
func GetActivityLevels() []string {
	out := make([]string, 0, len(activityLevels))
	for _, a := range activityLevels {
		out = append(out, string(a))
	}
	return out
}

// ActivityLevels returns the typed activity levels in declaration order.
func ActivityLevels() []ActivityLevel {
	return append([]ActivityLevel(nil), activityLevels...)
}

// IsValid reports whether a is a member of the enumeration.
func (a ActivityLevel) IsValid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Multiplier returns the TDEE multiplier, or 0 for an invalid level.
func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

// Label returns the display label.
func (a ActivityLevel) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return string(a)
}

func (a ActivityLevel) String() string {
	return string(a)
}

// Goal is the closed set of dietary goals. It selects the calorie multiplier
// and the meal plan.
type Goal string

// Goal constants.
const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
)

var goals = []Goal{
	GoalWeightLoss,
	GoalMuscleGain,
	GoalMaintenance,
}

var goalMultipliers = map[Goal]float64{
	GoalWeightLoss:  0.85,
	GoalMuscleGain:  1.15,
	GoalMaintenance: 1.0,
}

var goalLabels = map[Goal]string{
	GoalWeightLoss:  "Lose weight",
	GoalMuscleGain:  "Build muscle",
	GoalMaintenance: "Maintain current weight",
}

// ParseGoal parses a string into a Goal. There is no fallback: unknown keys
// fail with UNKNOWN_ENUM on every path.
func ParseGoal(s string) (Goal, error) {
	g := Goal(normalizeKey(s))
	if !g.IsValid() {
		return "", unknownEnum("goal", s, GetGoals())
	}
	return g, nil
}

// GetGoals returns all goals in declaration order.
func GetGoals() []string {
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		out = append(out, string(g))
	}
	return out
}

// Goals returns the typed goals in declaration order.
func Goals() []Goal {
	return append([]Goal(nil), goals...)
}

// IsValid reports whether g is a member of the enumeration.
func (g Goal) IsValid() bool {
	_, ok := goalMultipliers[g]
	return ok
}

// Multiplier returns the calorie multiplier, or 0 for an invalid goal.
func (g Goal) Multiplier() float64 {
	return goalMultipliers[g]
}

// Label returns the display label.
func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

func (g Goal) String() string {
	return string(g)
}

func unknownEnum(field, value string, allowed []string) error {
	return nberrors.NewWithContext(nberrors.ErrCodeUnknownEnum,
		fmt.Sprintf("unknown %s %q, supported values: %s", field, value, strings.Join(allowed, ", ")),
		map[string]any{
			"field":   field,
			"value":   value,
			"allowed": allowed,
		})
}
