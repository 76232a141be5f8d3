// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the blog API server.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in [Defaults]
//
// The main entry point is [GetStructuredConfig].
package config
