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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	nberrors "github.com/nutribot/nutribot/pkg/errors"
	"github.com/nutribot/nutribot/pkg/mealplan"
	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/recipe"
	"github.com/nutribot/nutribot/pkg/serializer"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(strings.NewReader(stdin), &out)
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"JSON", serializer.FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.want, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestCalculateCommand_Flags(t *testing.T) {
	out, err := runCLI(t, "", "calculate",
		"--age", "30", "--weight", "70", "--height", "175",
		"--activity", "moderate", "--goal", "maintenance", "--format", "json")
	require.NoError(t, err)

	var got nutrition.Targets
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1649, got.BMR)
	assert.Equal(t, 2556, got.TDEE)
	assert.Equal(t, 2556, got.TargetCalories)
	assert.Equal(t, 154, got.Protein)
	assert.Equal(t, 71, got.Fat)
	assert.Equal(t, 325, got.Carbs)
}

func TestCalculateCommand_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("age: 40\nweight: 80\nheight: 180\nactivity: Sedentary\ngoal: weight_loss\n"), 0o600))

	out, err := runCLI(t, "", "calculate", "--profile", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1765, got["targetCalories"])
	assert.Equal(t, 155, got["carbs"])
}

func TestCalculateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code nberrors.ErrorCode
	}{
		{
			name: "missing measurements",
			args: []string{"calculate", "--activity", "moderate", "--goal", "maintenance"},
			code: nberrors.ErrCodeInvalidInput,
		},
		{
			name: "unknown activity",
			args: []string{"calculate", "--age", "30", "--weight", "70", "--height", "175", "--activity", "lazy", "--goal", "maintenance"},
			code: nberrors.ErrCodeUnknownEnum,
		},
		{
			name: "unknown goal",
			args: []string{"calculate", "--age", "30", "--weight", "70", "--height", "175", "--activity", "moderate", "--goal", "bulk"},
			code: nberrors.ErrCodeUnknownEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, nberrors.CodeOf(err))
		})
	}

	t.Run("bad format", func(t *testing.T) {
		_, err := runCLI(t, "", "calculate", "--format", "xml")
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("missing profile file", func(t *testing.T) {
		_, err := runCLI(t, "", "calculate", "--profile", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestCalculateCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.json")
	out, err := runCLI(t, "", "calculate",
		"--age", "30", "--weight", "70", "--height", "175",
		"--activity", "moderate", "--goal", "maintenance",
		"--format", "json", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := serializer.FromFile[nutrition.Targets](path)
	require.NoError(t, err)
	assert.Equal(t, 2556, got.TargetCalories)
}

func TestMealPlanCommand(t *testing.T) {
	out, err := runCLI(t, "", "meal-plan", "--goal", "Muscle_Gain", "--format", "json")
	require.NoError(t, err)

	var got mealplan.MealPlan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, nutrition.GoalMuscleGain, got.Goal)
	assert.Len(t, got.Meals.Snacks, 2)

	_, err = runCLI(t, "", "meal-plan", "--goal", "unknown_value")
	require.Error(t, err)
	assert.Equal(t, nberrors.ErrCodeUnknownEnum, nberrors.CodeOf(err))
}

func TestRecipesCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"repeated flag", []string{"-i", "chicken", "-i", "vegetables"}, []string{"Sautéed Chicken with Vegetables"}},
		{"comma list", []string{"--ingredient", "vegetables,fish,eggs"}, []string{"Spinach and Mushroom Omelette", "Baked Fish Fillet with Broccoli"}},
		{"no match", []string{"-i", "pasta"}, []string{}},
		{"no ingredients", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"recipes", "--format", "json"}, tt.args...)
			out, err := runCLI(t, "", args...)
			require.NoError(t, err)

			var got []recipe.Recipe
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSplitIngredients(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitIngredients([]string{"a, b", " ", "c,"}))
	assert.Nil(t, splitIngredients(nil))
}

func TestRootRunsWizard(t *testing.T) {
	out, err := runCLI(t, "30\n70\n175\n3\n3\nn\n")
	require.NoError(t, err)
	assert.Contains(t, out, "NutriBot - Healthy Eating Advisor")
	assert.Contains(t, out, "Meal plan: Maintenance")

	out, err = runCLI(t, "30\n70\n175\n3\n3\nn\n", "wizard")
	require.NoError(t, err)
	assert.Contains(t, out, "Meal plan: Maintenance")
}
