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

// Package recipe matches a set of available ingredients to recipes.
//
// Rules are data: each one names the ingredient tags it requires and the
// recipe it yields. The embedded rule set has five rules, evaluated in
// declaration order:
//
//	chicken + vegetables  Sautéed Chicken with Vegetables
//	eggs + vegetables     Spinach and Mushroom Omelette
//	fish + vegetables     Baked Fish Fillet with Broccoli
//	rice + legumes        Brown Rice with Lentils
//	fruits + dairy        Fruit Smoothie with Greek Yogurt
//
// Rules are independent, so one selection can match several. The output
// order follows the rules, never the input. Matching never fails: unknown
// tags are ignored and an empty result is a valid answer.
//
//	recipes := recipe.DefaultMatcher().Match([]string{"eggs", "vegetables"})
package recipe
