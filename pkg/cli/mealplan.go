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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nutribot/nutribot/pkg/mealplan"
	"github.com/nutribot/nutribot/pkg/nutrition"
)

func mealPlanCmd() *cli.Command {
	return &cli.Command{
		Name:  "meal-plan",
		Usage: "Show the daily meal plan for a goal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "goal",
				Aliases:  []string{"g"},
				Required: true,
				Usage:    fmt.Sprintf("goal (supported values: %s)", strings.Join(nutrition.GetGoals(), ", ")),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			catalog, err := mealplan.DefaultCatalog()
			if err != nil {
				return err
			}

			plan, err := catalog.PlanForKey(cmd.String("goal"))
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, plan)
		},
	}
}
