// Copyright 2024-2026 The strict Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package result attaches logging and exit behavior to the error half of a
// Go result. The Log functions record a failure without disturbing it, the
// AndReplace variants record it and narrow it to a coarser error for the
// caller, and the UnwrapOrExit family turns a failure into a clean process
// exit with a readable message instead of a panic.
// A nil error always means success: it is passed through untouched and no
// logger is ever invoked for it.

package result
