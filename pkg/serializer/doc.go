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

// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable format, also accepted for profile files
//   - Table: FIELD/VALUE rows with flattened keys
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer writer.Close()
//	if err := writer.Serialize(ctx, targets); err != nil {
//		return err
//	}
//
// Loading a profile file, format picked from the extension:
//
//	p, err := serializer.FromFile[nutrition.Profile]("profile.yaml")
//
// For HTTP:
//
//	if err := serializer.DecodeBody(r, &req); err != nil { ... }
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoded body so an encoding failure never leaves a
// half-written response.
package serializer
