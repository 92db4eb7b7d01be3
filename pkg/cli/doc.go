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

// Package cli implements the nutribot command-line interface.
//
// # Commands
//
// wizard (default) - interactive walkthrough:
//
//	nutribot
//
// Asks for age, weight, height, activity level and goal, prints the
// nutrition analysis and the meal plan for the goal, then offers recipe
// suggestions for a numbered selection of ingredients. Invalid answers are
// asked again. Closing the input aborts the wizard with an error.
//
// calculate - daily targets:
//
//	nutribot calculate --age 30 --weight 70 --height 175 --activity moderate --goal maintenance
//	nutribot calculate --profile me.yaml
//
// meal-plan - the plan for a goal:
//
//	nutribot meal-plan --goal muscle_gain --format json
//
// recipes - recipes for available ingredients:
//
//	nutribot recipes -i chicken -i vegetables
//
// # Flags
//
//	--log-level    debug, info, warn, error (default: warn, env LOG_LEVEL)
//	--output, -o   output file path (default: stdout)
//	--format, -t   yaml, json, table (default: yaml)
//
// Logs are JSON on stderr. Results go to stdout or --output.
package cli
