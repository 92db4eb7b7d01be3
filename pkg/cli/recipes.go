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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nutribot/nutribot/pkg/recipe"
)

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipes",
		Usage: "Suggest recipes for the ingredients you have",
		Description: `Match available ingredients against the recipe rules. Repeat --ingredient
or pass a comma-separated list:

  nutribot recipes --ingredient chicken --ingredient vegetables
  nutribot recipes -i eggs,vegetables,fish --format json

Unknown ingredients are ignored. An empty list is printed when nothing matches.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   fmt.Sprintf("available ingredient (supported values: %s)", strings.Join(recipe.GetIngredients(), ", ")),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ingredients := splitIngredients(cmd.StringSlice("ingredient"))
			m := recipe.DefaultMatcher()
			if unknown := m.UnknownTags(ingredients); len(unknown) > 0 {
				slog.Warn("ignoring unknown ingredients", "ingredients", unknown)
			}

			return writeOutput(ctx, cmd, m.Match(ingredients))
		},
	}
}

// splitIngredients flattens comma-separated flag values.
func splitIngredients(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
