// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/quarry-data/analysis-bridge/analysispb"
)

func metadataFrame(names []string, estimated int32) *analysispb.ExecuteQueryResponse {
	return &analysispb.ExecuteQueryResponse{
		ResponseType: &analysispb.ExecuteQueryResponse_Metadata{
			Metadata: &analysispb.QueryMetadata{
				ColumnNames:   names,
				EstimatedRows: estimated,
			},
		},
	}
}

func chunkFrame(payload []byte, rows, index int32) *analysispb.ExecuteQueryResponse {
	return &analysispb.ExecuteQueryResponse{
		ResponseType: &analysispb.ExecuteQueryResponse_DataChunk{
			DataChunk: &analysispb.QueryDataChunk{
				ArrowIpcData: payload,
				ChunkRows:    rows,
				ChunkIndex:   index,
			},
		},
	}
}

func completeFrame(totalRows int32, execMS string, success bool, errMsg string) *analysispb.ExecuteQueryResponse {
	return &analysispb.ExecuteQueryResponse{
		ResponseType: &analysispb.ExecuteQueryResponse_Complete{
			Complete: &analysispb.QueryComplete{
				TotalRows:       totalRows,
				ExecutionTimeMs: execMS,
				Success:         success,
				ErrorMessage:    errMsg,
			},
		},
	}
}

// idNamePayload encodes an (id, name) batch as one chunk payload.
func idNamePayload(t *testing.T, ids []int64, names []string) []byte {
	t.Helper()
	batch := buildTestBatch(t, ids, names)
	defer batch.Release()
	return encodeIPCStream(t, batch)
}

func newTestAccumulator(t *testing.T) *queryAccumulator {
	t.Helper()
	return newQueryAccumulator(zaptest.NewLogger(t), nil)
}

func TestAccumulatorHappyPath(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 3))
	assert.False(t, acc.done())
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1, 2}, []string{"a", "b"}), 2, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{3}, []string{"c"}), 1, 1))
	acc.consume(ctx, completeFrame(3, "42", true, ""))
	assert.True(t, acc.done())

	result := acc.result()
	assert.Equal(t, []string{"id", "name"}, result.ColumnNames)
	assert.Equal(t, 3, result.TotalRows)
	assert.EqualValues(t, 42, result.ExecutionTime)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, Row{"id": "1", "name": "a"}, result.Rows[0])
	assert.Equal(t, Row{"id": "2", "name": "b"}, result.Rows[1])
	assert.Equal(t, Row{"id": "3", "name": "c"}, result.Rows[2])
}

func TestAccumulatorEmptyResult(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id"}, 0))
	acc.consume(ctx, completeFrame(0, "5", true, ""))

	result := acc.result()
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.TotalRows)
	assert.Equal(t, []string{"id"}, result.ColumnNames)
	assert.EqualValues(t, 5, result.ExecutionTime)
}

func TestAccumulatorCorruptChunkIsSkipped(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
	acc.consume(ctx, chunkFrame([]byte{0xde, 0xad, 0xbe, 0xef}, 5, 1))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{2}, []string{"b"}), 1, 2))
	acc.consume(ctx, completeFrame(7, "9", true, ""))

	result := acc.result()
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, acc.chunksFailed)
	assert.Equal(t, 2, acc.chunksDecoded)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "1", result.Rows[0]["id"])
	assert.Equal(t, "2", result.Rows[1]["id"])
}

func TestAccumulatorEmptyChunkContributesNothing(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, chunkFrame(nil, 0, 0))
	acc.consume(ctx, completeFrame(0, "1", true, ""))

	result := acc.result()
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, acc.chunksFailed)
}

func TestAccumulatorTotalRowsIgnoresEngineCount(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1, 2}, []string{"a", "b"}), 2, 0))
	// The engine claims far more rows than it shipped.
	acc.consume(ctx, completeFrame(9999, "1", true, ""))

	assert.Equal(t, 2, acc.result().TotalRows)
}

func TestAccumulatorUnparseableExecutionTime(t *testing.T) {
	cases := []string{"", "fast", "12.5ms", "-3"}
	for _, raw := range cases {
		acc := newTestAccumulator(t)
		acc.consume(context.Background(), metadataFrame([]string{"id"}, 0))
		acc.consume(context.Background(), completeFrame(0, raw, true, ""))
		assert.Zero(t, acc.result().ExecutionTime, "raw %q", raw)
	}
}

func TestAccumulatorDuplicateMetadataLastWriteWins(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"old_a", "old_b"}, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{2}, []string{"b"}), 1, 1))
	acc.consume(ctx, completeFrame(2, "1", true, ""))

	result := acc.result()
	assert.Equal(t, []string{"id", "name"}, result.ColumnNames)
	require.Len(t, result.Rows, 2)
	// Rows assembled before the replacement keep their original keys.
	assert.Equal(t, Row{"old_a": "1", "old_b": "a"}, result.Rows[0])
	assert.Equal(t, Row{"id": "2", "name": "b"}, result.Rows[1])
}

func TestAccumulatorChunkBeforeMetadata(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1, 2}, []string{"a", "b"}), 2, 0))
	acc.consume(ctx, completeFrame(2, "1", true, ""))

	result := acc.result()
	// Rows are counted but keyless: no column names were ever announced.
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Rows[0])
	assert.Empty(t, result.ColumnNames)
	assert.Equal(t, 2, result.TotalRows)
}

func TestAccumulatorColumnCountMismatch(t *testing.T) {
	ctx := context.Background()

	t.Run("extra batch columns dropped", func(t *testing.T) {
		acc := newTestAccumulator(t)
		acc.consume(ctx, metadataFrame([]string{"id"}, 0))
		acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
		acc.consume(ctx, completeFrame(1, "1", true, ""))

		result := acc.result()
		require.Len(t, result.Rows, 1)
		assert.Equal(t, Row{"id": "1"}, result.Rows[0])
	})

	t.Run("names beyond batch columns absent", func(t *testing.T) {
		acc := newTestAccumulator(t)
		acc.consume(ctx, metadataFrame([]string{"id", "name", "extra"}, 0))
		acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
		acc.consume(ctx, completeFrame(1, "1", true, ""))

		result := acc.result()
		require.Len(t, result.Rows, 1)
		assert.Equal(t, Row{"id": "1", "name": "a"}, result.Rows[0])
		_, present := result.Rows[0]["extra"]
		assert.False(t, present)
	})
}

func TestAccumulatorUnknownFrameSkipped(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, &analysispb.ExecuteQueryResponse{}) // no variant set
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
	acc.consume(ctx, completeFrame(1, "1", true, ""))

	assert.Equal(t, 1, acc.result().TotalRows)
	assert.True(t, acc.done())
}

func TestAccumulatorEngineReportedFailure(t *testing.T) {
	ctx := context.Background()
	acc := newTestAccumulator(t)

	acc.consume(ctx, metadataFrame([]string{"id", "name"}, 0))
	acc.consume(ctx, chunkFrame(idNamePayload(t, []int64{1}, []string{"a"}), 1, 0))
	acc.consume(ctx, completeFrame(1, "3", false, "out of memory"))

	// A clean stream with success=false still yields the accumulated rows.
	assert.True(t, acc.done())
	result := acc.result()
	assert.Equal(t, 1, result.TotalRows)
	assert.EqualValues(t, 3, result.ExecutionTime)
}

func TestAccumulatorNoFramesAtAll(t *testing.T) {
	acc := newTestAccumulator(t)

	assert.False(t, acc.done())
	result := acc.result()
	assert.NotNil(t, result.Rows)
	assert.NotNil(t, result.ColumnNames)
	assert.Equal(t, 0, result.TotalRows)
	assert.Zero(t, result.ExecutionTime)
}
