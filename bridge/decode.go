// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame magic number from RFC 8878, little-endian.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))

// decodeChunk reads every record batch from one chunk payload. The payload
// is a complete Arrow IPC stream, optionally zstd-compressed at the
// transport level; compressed payloads are inflated before decoding.
//
// An empty payload decodes to zero batches. A malformed payload fails as a
// whole: no batches are returned even if a prefix of the stream decoded
// cleanly, so a chunk contributes either all of its rows or none.
//
// Returned batches are retained; the caller owns their release.
func decodeChunk(payload []byte) ([]arrow.Record, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	if bytes.HasPrefix(payload, zstdMagic) {
		inflated, err := zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("inflating chunk payload: %w", err)
		}
		payload = inflated
	}

	reader, err := ipc.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("opening chunk IPC stream: %w", err)
	}
	defer reader.Release()

	var batches []arrow.Record
	for reader.Next() {
		batch := reader.Record()
		batch.Retain()
		batches = append(batches, batch)
	}
	if err := reader.Err(); err != nil {
		for _, b := range batches {
			b.Release()
		}
		return nil, fmt.Errorf("reading chunk batch: %w", err)
	}
	return batches, nil
}
