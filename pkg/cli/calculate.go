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

	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/serializer"
)

func calculateCmd() *cli.Command {
	return &cli.Command{
		Name:  "calculate",
		Usage: "Compute daily energy and macronutrient targets",
		Description: `Compute BMR, TDEE, target calories and protein/fat/carbohydrate grams
from a profile given as flags or as a YAML/JSON file:

  nutribot calculate --age 30 --weight 70 --height 175 --activity moderate --goal maintenance
  nutribot calculate --profile me.yaml --format json

A negative carbohydrate target is reported as a warning, not an error.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "age",
				Usage: "age in years",
			},
			&cli.FloatFlag{
				Name:  "weight",
				Usage: "body weight in kg",
			},
			&cli.FloatFlag{
				Name:  "height",
				Usage: "height in cm",
			},
			&cli.StringFlag{
				Name:  "activity",
				Usage: fmt.Sprintf("activity level (supported values: %s)", strings.Join(nutrition.GetActivityLevels(), ", ")),
			},
			&cli.StringFlag{
				Name:  "goal",
				Usage: fmt.Sprintf("goal (supported values: %s)", strings.Join(nutrition.GetGoals(), ", ")),
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"f"},
				Usage:   "path to a YAML or JSON profile {age, weight, height, activity, goal}; other profile flags are ignored",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			p, err := profileFromCmd(cmd)
			if err != nil {
				return err
			}

			t, err := nutrition.NewCalculator().Calculate(*p)
			if err != nil {
				return err
			}
			for _, w := range t.Warnings {
				slog.Warn("calculation warning", "code", w.Code, "shortfallKcal", w.ShortfallKcal)
			}

			return writeOutput(ctx, cmd, t)
		},
	}
}

// profileFromCmd builds a validated profile from --profile or the
// individual flags.
func profileFromCmd(cmd *cli.Command) (*nutrition.Profile, error) {
	if path := cmd.String("profile"); path != "" {
		req, err := serializer.FromFile[nutrition.CalculateRequest](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile from %q: %w", path, err)
		}
		return req.Profile()
	}

	return nutrition.NewProfile(
		cmd.Int("age"),
		cmd.Float("weight"),
		cmd.Float("height"),
		cmd.String("activity"),
		cmd.String("goal"),
	)
}
