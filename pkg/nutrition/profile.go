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

// Upper bounds on accepted measurements. Anything beyond them is a typo or
// garbage, not a person.
const (
	maxAge      = 150
	maxWeightKg = 1000.0
	maxHeightCm = 300.0
)

// Profile holds the five inputs the calculator needs. It is ephemeral: one per
// request or wizard session.
type Profile struct {
	// Age in years.
	Age int `json:"age" yaml:"age"`
	// Weight in kilograms.
	Weight float64 `json:"weight" yaml:"weight"`
	// Height in centimetres.
	Height float64 `json:"height" yaml:"height"`
	// Activity is the physical activity level.
	Activity ActivityLevel `json:"activity" yaml:"activity"`
	// Goal is the dietary goal.
	Goal Goal `json:"goal" yaml:"goal"`
}

// Validate checks measurements first and enumerations second, so a profile that
// is wrong in both ways reports INVALID_INPUT.
func (p Profile) Validate() error {
	if err := checkMeasurements(p.Age, p.Weight, p.Height); err != nil {
		return err
	}
	if !p.Activity.IsValid() {
		return unknownEnum("activity", string(p.Activity), GetActivityLevels())
	}
	if !p.Goal.IsValid() {
		return unknownEnum("goal", string(p.Goal), GetGoals())
	}
	return nil
}

// NewProfile checks the measurements, parses the enum keys and validates the
// result.
func NewProfile(age int, weight, height float64, activity, goal string) (*Profile, error) {
	if err := checkMeasurements(age, weight, height); err != nil {
		return nil, err
	}
	a, err := ParseActivityLevel(activity)
	if err != nil {
		return nil, err
	}
	g, err := ParseGoal(goal)
	if err != nil {
		return nil, err
	}
	p := Profile{Age: age, Weight: weight, Height: height, Activity: a, Goal: g}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func checkMeasurements(age int, weight, height float64) error {
	if err := checkMeasurement("age", float64(age), maxAge); err != nil {
		return err
	}
	if err := checkMeasurement("weight", weight, maxWeightKg); err != nil {
		return err
	}
	return checkMeasurement("height", height, maxHeightCm)
}

func checkMeasurement(field string, v, maxValue float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalidMeasurement(field, v,
			fmt.Sprintf("%s must be a positive finite number, got %v", field, v))
	}
	if v > maxValue {
		return invalidMeasurement(field, v,
			fmt.Sprintf("%s must be at most %v, got %v", field, maxValue, v))
	}
	return nil
}

func invalidMeasurement(field string, v float64, msg string) error {
	return nberrors.NewWithContext(nberrors.ErrCodeInvalidInput, msg,
		map[string]any{
			"field": field,
			"value": fmt.Sprintf("%v", v),
		})
}
