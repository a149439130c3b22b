// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the vault application runtime.
//
// It opens the vault file, derives the master key and wires the store,
// the services and the terminal UI into a single process lifecycle.
package app
