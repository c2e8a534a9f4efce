// Copyright 2024-2026 The strict Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package errors provides the plumbing for failures that travel as values:
// walking and joining causal chains, a transparent type-erased container and
// a termination reporter that renders the whole chain of a fatal error once
// before the process exits.
// The package is fully compatible with the standard library and re-exports
// its entry points, so callers need a single errors import.

package errors
