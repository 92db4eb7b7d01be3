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

// Package defaults provides centralized configuration constants for nutribot.
//
// Timeouts, limits, and cache durations used by the API server and its handlers
// live here so both binaries agree on them.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Handlers: the core is pure and fast, so handler timeouts only bound
//     request body decoding.
//   - Server shutdown: 30s for graceful shutdown.
//   - Catalog responses are static for the life of the process and may be
//     cached by browsers.
package defaults
