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

// Package logging provides structured logging utilities for nutribot binaries.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults so
// the CLI and the API server log the same way. It supports environment-based log
// level configuration and module/version context injection. Source locations
// are added to debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nutribotd", "v1.0.0")
//	    slog.Info("processing request", "id", "req-123")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("nutribot", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug nutribotd
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never mix with the
// wizard's prompts or command output on stdout:
//
//	{"time":"...","level":"INFO","msg":"server started","module":"nutribotd","version":"v1.0.0"}
//
// The nutrition, mealplan and recipe packages never log; logging happens in the
// adapters (cli, server, api) only.
package logging
