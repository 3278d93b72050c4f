// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies a BridgeError for callers that route on failure
// class rather than message text.
type ErrorKind string

const (
	// KindTransport covers connection-level faults: refused connections,
	// TLS negotiation failures, deadlines exceeded, cancellation.
	KindTransport ErrorKind = "TransportError"
	// KindRPC covers server-reported faults on an established call,
	// including mid-stream aborts.
	KindRPC ErrorKind = "RpcError"
	// KindDecode covers chunk payloads that failed Arrow IPC decoding.
	// These are recovered inside the assembler and only surface through
	// logs and metrics, never to callers of ExecuteQuery.
	KindDecode ErrorKind = "DecodeError"
	// KindConfig covers malformed endpoints and invalid client options.
	KindConfig ErrorKind = "ConfigError"
)

// ErrBridge is a sentinel for use with errors.Is to check whether any
// error in a chain is a *BridgeError.
var ErrBridge = &BridgeError{}

// BridgeError is the failure type surfaced by all public client
// operations.
type BridgeError struct {
	Kind ErrorKind
	Op   string // the operation that failed, e.g. "ExecuteQuery"
	Err  error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error { return e.Err }

// Is supports errors.Is by matching any *BridgeError target, or one with
// the same Kind when the target specifies one.
func (e *BridgeError) Is(target error) bool {
	t, ok := target.(*BridgeError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// classifyRPC wraps a gRPC call failure into a BridgeError, separating
// connection-level faults from server-reported ones by status code.
func classifyRPC(op string, err error) *BridgeError {
	kind := KindRPC
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.Unauthenticated:
			kind = KindTransport
		}
	}
	return &BridgeError{Kind: kind, Op: op, Err: err}
}
