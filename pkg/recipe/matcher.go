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

package recipe

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/recipes.yaml
	rulesData []byte

	defaultMatcherOnce sync.Once
	defaultMatcher     *Matcher
	defaultMatcherErr  error
)

// Matcher resolves a set of ingredient tags to recipes. It is immutable
// after construction and safe for concurrent use.
type Matcher struct {
	rules []Rule
}

// ParseRules decodes a YAML rule document.
func ParseRules(data []byte) ([]Rule, error) {
	var doc ruleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipe rules: %w", err)
	}
	return doc.Rules, nil
}

// LoadDefaultMatcher returns the matcher for the embedded rule set.
// It is parsed once and cached.
func LoadDefaultMatcher() (*Matcher, error) {
	defaultMatcherOnce.Do(func() {
		rules, err := ParseRules(rulesData)
		if err != nil {
			defaultMatcherErr = err
			return
		}
		defaultMatcher, defaultMatcherErr = NewMatcher(rules)
		if defaultMatcherErr != nil {
			defaultMatcherErr = fmt.Errorf("invalid embedded recipe rules: %w", defaultMatcherErr)
		}
	})
	return defaultMatcher, defaultMatcherErr
}

// DefaultMatcher is LoadDefaultMatcher for callers that cannot recover from
// malformed embedded data. It panics on error.
func DefaultMatcher() *Matcher {
	m, err := LoadDefaultMatcher()
	if err != nil {
		panic(err.Error())
	}
	return m
}

// NewMatcher checks rules and returns a Matcher that evaluates them in the
// given order. Each rule needs a unique name, at least one known required
// ingredient, a title and a valid difficulty.
func NewMatcher(rules []Rule) (*Matcher, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("at least one recipe rule is required")
	}

	names := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))
	for i, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule %d: name is required", i)
		}
		if names[r.Name] {
			return nil, fmt.Errorf("rule %d: duplicate name %q", i, r.Name)
		}
		names[r.Name] = true

		if len(r.Requires) == 0 {
			return nil, fmt.Errorf("rule %s: requires at least one ingredient", r.Name)
		}
		req := make([]Ingredient, len(r.Requires))
		for j, in := range r.Requires {
			n := NormalizeIngredient(string(in))
			if !n.IsKnown() {
				return nil, fmt.Errorf("rule %s: unknown ingredient %q", r.Name, in)
			}
			req[j] = n
		}
		if strings.TrimSpace(r.Recipe.Title) == "" {
			return nil, fmt.Errorf("rule %s: recipe title is required", r.Name)
		}
		if !r.Recipe.Difficulty.IsValid() {
			return nil, fmt.Errorf("rule %s: invalid difficulty %q", r.Name, r.Recipe.Difficulty)
		}

		out = append(out, Rule{Name: r.Name, Requires: req, Recipe: r.Recipe.clone()})
	}

	return &Matcher{rules: out}, nil
}

// Rules returns a copy of the rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	for i, r := range m.rules {
		out[i] = Rule{
			Name:     r.Name,
			Requires: slices.Clone(r.Requires),
			Recipe:   r.Recipe.clone(),
		}
	}
	return out
}

// Match returns the recipes of every rule whose required tags are all in
// ingredients, in rule order. Tags are trimmed and case-folded. Unknown
// tags, duplicates and input order have no effect. The result is never nil.
func (m *Matcher) Match(ingredients []string) []Recipe {
	selected := make(map[Ingredient]struct{}, len(ingredients))
	for _, s := range ingredients {
		selected[NormalizeIngredient(s)] = struct{}{}
	}

	out := make([]Recipe, 0)
	for _, r := range m.rules {
		if satisfies(selected, r.Requires) {
			out = append(out, r.Recipe.clone())
		}
	}
	return out
}

func satisfies(selected map[Ingredient]struct{}, required []Ingredient) bool {
	for _, in := range required {
		if _, ok := selected[in]; !ok {
			return false
		}
	}
	return true
}

// UnknownTags returns the normalized input tags outside the vocabulary,
// deduplicated, in input order. Blank tags are skipped.
func (m *Matcher) UnknownTags(ingredients []string) []string {
	var out []string
	seen := make(map[Ingredient]bool)
	for _, s := range ingredients {
		n := NormalizeIngredient(s)
		if n == "" || n.IsKnown() || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, string(n))
	}
	return out
}
