// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive tracker runtime.
//
// It wires first-run seeding, session restore, the terminal UI and the
// dashboard refresh job into a single process lifecycle.
package client
