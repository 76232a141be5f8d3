// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON:API transport layer of the blog.
//
// It wires the chi router, the request handlers of articles, comments,
// registrations and access tokens, and the middleware chain: trace ids,
// access logging, metrics, panic recovery, bearer authorization and the
// login rate limiter. Service errors are translated into JSON:API error
// documents in one place, [Handler.writeError].
package http
