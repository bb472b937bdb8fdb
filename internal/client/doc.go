// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It wires the crypter services, background workers and the password
// prompt into a single process lifecycle and maps commands to service
// calls. Failures are reported with the fixed messages of package app.
package client
