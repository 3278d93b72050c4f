// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package bridge is a client for the analysis engine's gRPC API. It
// exposes the engine's dataset catalog and streaming query execution as
// plain Go values, hiding the wire protocol from callers.
//
// # Query result protocol
//
// ExecuteQuery consumes a server stream of tagged frames: one metadata
// frame naming the result columns, any number of data chunks carrying
// Arrow IPC payloads, and a completion frame with the engine's timing.
// Chunks are decoded into rows positionally against the metadata column
// list, with every cell rendered to its canonical string form.
//
// The consumer is deliberately tolerant: a chunk that fails to decode
// contributes zero rows, a cell that cannot be rendered becomes the
// "ERROR" sentinel, null cells become "NULL", an unparseable completion
// duration becomes 0, and a stream that ends early yields a partial
// result. Only transport-level and mid-stream RPC faults are surfaced to
// callers, always as a [BridgeError].
//
// # Connection lifecycle
//
// A [Client] derives channel security from its endpoint string once, at
// construction, and dials lazily on first use. The channel is shared by
// all calls and survives until [Client.Close]; a closed client re-dials
// on its next call. Every operation takes a context for deadlines and
// cancellation, which tear down in-flight streams promptly.
package bridge
