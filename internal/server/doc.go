// SPDX-License-Identifier: Apache-2.0

// Package server wires and runs the reference remote server's HTTP
// transport, including startup, signal handling, and graceful shutdown.
package server
