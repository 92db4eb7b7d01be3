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

package api

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nutribot/nutribot/pkg/defaults"
	"github.com/nutribot/nutribot/pkg/logging"
	"github.com/nutribot/nutribot/pkg/mealplan"
	"github.com/nutribot/nutribot/pkg/nutrition"
	"github.com/nutribot/nutribot/pkg/recipe"
	"github.com/nutribot/nutribot/pkg/server"
)

const (
	name           = "nutribotd"
	versionDefault = "dev"

	// defaultStaticDir is served at "/" when STATIC_DIR is unset and the
	// directory exists.
	defaultStaticDir = "public"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/nutribot/nutribot/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Route patterns served by nutribotd.
const (
	RouteCalculate = "/api/calculate"
	RouteMealPlan  = "/api/meal-plan/{" + mealplan.GoalPathValue + "}"
	RouteRecipes   = "/api/recipes"
)

// Routes returns the application handlers keyed by ServeMux pattern.
// Each handler is bounded by defaults.HandlerTimeout.
func Routes() (map[string]http.HandlerFunc, error) {
	catalog, err := mealplan.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	calc := nutrition.NewCalculator()
	matcher, err := recipe.LoadDefaultMatcher()
	if err != nil {
		return nil, err
	}

	return map[string]http.HandlerFunc{
		RouteCalculate: withTimeout(calc.HandleCalculate),
		RouteMealPlan:  withTimeout(catalog.HandleMealPlan),
		RouteRecipes:   withTimeout(matcher.HandleRecipes),
	}, nil
}

func withTimeout(h http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(h, defaults.HandlerTimeout, "request timed out").ServeHTTP
}

// NewServer builds the nutribotd server from the environment.
func NewServer() (*server.Server, error) {
	routes, err := Routes()
	if err != nil {
		return nil, err
	}

	cfg := server.NewConfig()
	if cfg.StaticDir == "" && dirExists(defaultStaticDir) {
		cfg.StaticDir = defaultStaticDir
	}

	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
		server.WithReadinessCheck(CheckMealPlans, checkMealPlans),
		server.WithReadinessCheck(CheckRecipes, checkRecipes),
	), nil
}

// Readiness check names reported by /ready.
const (
	CheckMealPlans = "mealplans"
	CheckRecipes   = "recipes"
)

// checkMealPlans reports whether the embedded catalog loaded. NewCatalog
// already rejects a catalog missing any goal.
func checkMealPlans(context.Context) error {
	_, err := mealplan.DefaultCatalog()
	return err
}

// checkRecipes reports whether the embedded recipe rules loaded.
func checkRecipes(context.Context) error {
	m, err := recipe.LoadDefaultMatcher()
	if err != nil {
		return err
	}
	if len(m.Rules()) == 0 {
		return errors.New("recipe rule set is empty")
	}
	return nil
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Serve starts the API server and blocks until shutdown.
// A .env file in the working directory, if present, is loaded first;
// variables already set in the environment take precedence.
func Serve() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer()
	if err != nil {
		slog.Error("failed to build server", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
