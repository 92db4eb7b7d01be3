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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testMeal struct {
	Name   string   `json:"name" yaml:"name"`
	Kcal   int      `json:"kcal" yaml:"kcal"`
	Snacks []string `json:"snacks,omitempty" yaml:"snacks,omitempty"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testMeal{
		{Name: "oats", Kcal: 350},
		{Name: "salad", Kcal: 450},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testMeal
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "oats" || result[0].Kcal != 350 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testMeal{Name: "snacks", Kcal: 250, Snacks: []string{"yogurt", "apple"}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testMeal
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "snacks" || len(result.Snacks) != 2 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []any{
		testMeal{Name: "oats", Kcal: 350},
		testMeal{Name: "salad", Kcal: 450},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "[0].Name") || !strings.Contains(output, "[1].Kcal") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_SerializeCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, testMeal{Name: "x"}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("invalid"), &buf)

	data := testMeal{Name: "test", Kcal: 123}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}

	var result testMeal
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
	if result.Name != "test" || result.Kcal != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", "\n"} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		if err := writer.Close(); err != nil {
			t.Errorf("Close failed for empty path writer: %v", err)
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "targets.json")

	writer := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if err := writer.Serialize(context.Background(), testMeal{Name: "dinner", Kcal: 400}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testMeal
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Name != "dinner" || result.Kcal != 400 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
	if writer == nil {
		t.Fatal("Expected non-nil writer (should fallback to stdout)")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close should not error on fallback writer: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), []testMeal{}); err != nil {
		t.Fatalf("Serialize empty slice failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected '<empty>' in output for empty data, got: %s", buf.String())
	}
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type meals struct {
		Breakfast string
		Snacks    []string
	}
	type plan struct {
		Name  string
		Meals meals
	}

	data := plan{
		Name:  "Maintenance",
		Meals: meals{Breakfast: "toast", Snacks: []string{"fruit", "yogurt"}},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Meals.Breakfast", "Meals.Snacks.[1]", "toast", "yogurt"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output:\n%s", want, output)
		}
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type withNil struct {
		Name  string
		Value *int
	}

	if err := writer.Serialize(context.Background(), withNil{Name: "test"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Value") {
		t.Error("Expected nil field to be listed")
	}
}
