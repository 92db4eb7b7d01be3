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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nutribot/nutribot/pkg/logging"
)

const (
	name           = "nutribot"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewCommand builds the root command. The wizard reads answers from in and
// every command writes its results to out.
func NewCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Healthy eating advisor",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Reader:                in,
		Writer:                out,
		Description: `nutribot computes daily energy and macronutrient targets, shows a meal
plan for your goal and suggests recipes for the ingredients you have.

Run without a command to start the interactive wizard.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWizard(ctx, cmd.Root().Reader, cmd.Root().Writer)
		},
		Commands: []*cli.Command{
			wizardCmd(),
			calculateCmd(),
			mealPlanCmd(),
			recipesCmd(),
		},
	}
}

func wizardCmd() *cli.Command {
	return &cli.Command{
		Name:  "wizard",
		Usage: "Interactive profile, meal plan and recipe walkthrough",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWizard(ctx, cmd.Root().Reader, cmd.Root().Writer)
		},
	}
}
