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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed before the wizard finished")

// prompter asks line-oriented questions. Invalid answers are reported and
// the question is asked again until a valid answer or end of input.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ask prints label and returns the trimmed answer.
func (p *prompter) ask(label string) (string, error) {
	p.printf("%s ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		p.printf("\n")
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askUntil repeats label until parse accepts the answer.
func askUntil[T any](p *prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.ask(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		p.printf("  %v\n", err)
	}
}

func (p *prompter) askPositiveInt(label, invalid string) (int, error) {
	return askUntil(p, label, func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return 0, errors.New(invalid)
		}
		return v, nil
	})
}

func (p *prompter) askPositiveFloat(label, invalid string) (float64, error) {
	return askUntil(p, label, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, errors.New(invalid)
		}
		return v, nil
	})
}

// choose shows a numbered list and returns the index of the chosen option.
// The answer is either the number or the option's key.
func (p *prompter) choose(label string, keys, labels []string) (int, error) {
	p.printf("%s\n", label)
	for i, l := range labels {
		p.printf("  %d) %s\n", i+1, l)
	}
	return askUntil(p, fmt.Sprintf("Choose 1-%d:", len(keys)), func(s string) (int, error) {
		if i, ok := pickIndex(s, keys); ok {
			return i, nil
		}
		return 0, fmt.Errorf("please choose a number between 1 and %d", len(keys))
	})
}

// chooseMany shows a numbered list and returns the chosen keys in list
// order. Answers are comma-separated numbers or keys; an empty answer
// selects nothing.
func (p *prompter) chooseMany(label string, keys []string) ([]string, error) {
	p.printf("%s\n", label)
	for i, k := range keys {
		p.printf("  %d) %s\n", i+1, k)
	}
	return askUntil(p, "Select (comma-separated, empty for none):", func(s string) ([]string, error) {
		picked := make([]bool, len(keys))
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			i, ok := pickIndex(part, keys)
			if !ok {
				return nil, fmt.Errorf("unknown choice %q", part)
			}
			picked[i] = true
		}
		out := make([]string, 0, len(keys))
		for i, ok := range picked {
			if ok {
				out = append(out, keys[i])
			}
		}
		return out, nil
	})
}

// confirm asks a yes/no question. An empty answer returns def.
func (p *prompter) confirm(label string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	return askUntil(p, label+" "+hint, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			return false, errors.New("please answer y or n")
		}
	})
}

func pickIndex(s string, keys []string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(keys) {
			return n - 1, true
		}
		return 0, false
	}
	for i, k := range keys {
		if strings.EqualFold(s, k) {
			return i, true
		}
	}
	return 0, false
}
