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

	"github.com/nutribot/nutribot/pkg/serializer"
)

// Flags hold parse state, so every command gets its own instances.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat reads --format and rejects unsupported values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeOutput serializes v to --output, or to the root command's writer.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}
