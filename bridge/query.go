// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"go.uber.org/zap"

	"github.com/quarry-data/analysis-bridge/analysispb"
)

// accumState tracks the frame protocol position of one query stream.
type accumState int

const (
	stateAwaitingMetadata accumState = iota
	stateStreaming
	stateDone
)

// queryAccumulator consumes the frames of one ExecuteQuery stream and
// assembles the final QueryResult. One instance exists per call; it is
// not safe for concurrent use and is discarded once the result is built.
//
// The accumulator never fails: malformed chunks contribute zero rows,
// unrecognized frames are skipped, and a non-numeric completion duration
// falls back to zero. Transport faults are the caller's concern.
type queryAccumulator struct {
	state       accumState
	columnNames []string
	rows        []Row
	execMS      int64

	chunksDecoded int
	chunksFailed  int

	logger  *zap.Logger
	metrics *clientMetrics
}

func newQueryAccumulator(logger *zap.Logger, metrics *clientMetrics) *queryAccumulator {
	return &queryAccumulator{
		state:   stateAwaitingMetadata,
		logger:  logger,
		metrics: metrics,
	}
}

func (a *queryAccumulator) done() bool { return a.state == stateDone }

// consume classifies one inbound frame and folds it into the accumulated
// state. Frames arriving after Complete are never seen because the caller
// stops pulling once done() reports true.
func (a *queryAccumulator) consume(ctx context.Context, frame *analysispb.ExecuteQueryResponse) {
	switch f := frame.GetResponseType().(type) {
	case *analysispb.ExecuteQueryResponse_Metadata:
		a.onMetadata(ctx, f.Metadata)
	case *analysispb.ExecuteQueryResponse_DataChunk:
		a.onDataChunk(ctx, f.DataChunk)
	case *analysispb.ExecuteQueryResponse_Complete:
		a.onComplete(ctx, f.Complete)
	default:
		// Empty or unrecognized variant. Skip rather than abort; the
		// engine may grow new frame kinds before this client does.
		a.logger.Warn("skipping unrecognized stream frame")
		a.metrics.recordFrame(ctx, frameKindUnknown)
	}
}

func (a *queryAccumulator) onMetadata(ctx context.Context, md *analysispb.QueryMetadata) {
	if a.state == stateStreaming && a.columnNames != nil {
		// Last write wins. The engine is not expected to send a second
		// metadata frame, but a repeat replaces the column list outright
		// instead of corrupting already-assembled rows.
		a.logger.Warn("duplicate metadata frame replaces column names",
			zap.Strings("previous", a.columnNames))
	}
	a.columnNames = md.GetColumnNames()
	a.state = stateStreaming
	a.metrics.recordFrame(ctx, frameKindMetadata)
	a.logger.Info("received query metadata",
		zap.Int("columns", len(a.columnNames)),
		zap.Int32("estimated_rows", md.GetEstimatedRows()),
		zap.Int("schema_bytes", len(md.GetArrowSchema())))
}

func (a *queryAccumulator) onDataChunk(ctx context.Context, chunk *analysispb.QueryDataChunk) {
	a.state = stateStreaming
	a.metrics.recordFrame(ctx, frameKindDataChunk)

	batches, err := decodeChunk(chunk.GetArrowIpcData())
	if err != nil {
		// One corrupt chunk must never abort an otherwise healthy
		// stream: log it, count it, move on with zero rows.
		a.chunksFailed++
		a.metrics.recordChunk(ctx, false, 0)
		a.logger.Error("dropping undecodable chunk",
			zap.Int32("chunk_index", chunk.GetChunkIndex()),
			zap.Int("payload_bytes", len(chunk.GetArrowIpcData())),
			zap.Error(&BridgeError{Kind: KindDecode, Op: "ExecuteQuery", Err: err}))
		return
	}

	decoded := 0
	for _, batch := range batches {
		decoded += a.appendRows(batch)
		batch.Release()
	}
	a.chunksDecoded++
	a.metrics.recordChunk(ctx, true, decoded)
	a.logger.Info("processed chunk",
		zap.Int32("chunk_index", chunk.GetChunkIndex()),
		zap.Int32("declared_rows", chunk.GetChunkRows()),
		zap.Int("decoded_rows", decoded),
		zap.Int("payload_bytes", len(chunk.GetArrowIpcData())))
}

// appendRows converts one decoded batch into rows keyed by the current
// column names. Pairing is positional: column i maps to columnNames[i].
// Batch columns beyond the known names are dropped, and names beyond the
// batch's column count produce rows without those keys. A chunk arriving
// before any metadata frame still contributes (keyless) rows.
func (a *queryAccumulator) appendRows(batch arrow.Record) int {
	n := int(batch.NumRows())
	cols := batch.Columns()
	for rowIdx := 0; rowIdx < n; rowIdx++ {
		row := make(Row, len(a.columnNames))
		for colIdx, name := range a.columnNames {
			if colIdx < len(cols) {
				row[name] = stringifyCell(cols[colIdx], rowIdx)
			}
		}
		a.rows = append(a.rows, row)
	}
	return n
}

func (a *queryAccumulator) onComplete(ctx context.Context, complete *analysispb.QueryComplete) {
	a.metrics.recordFrame(ctx, frameKindComplete)

	raw := complete.GetExecutionTimeMs()
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms < 0 {
		// The engine sent a non-numeric duration; the query result is
		// still good, so substitute zero instead of failing the call.
		a.logger.Warn("unparseable execution time, using 0", zap.String("raw", raw))
		ms = 0
	}
	a.execMS = ms

	if !complete.GetSuccess() && complete.GetErrorMessage() != "" {
		// The engine reported a query-level failure but closed the
		// stream cleanly; surface the message in logs and return what
		// was accumulated, matching the engine's own client behavior.
		a.logger.Warn("engine reported query failure",
			zap.String("engine_error", complete.GetErrorMessage()))
	}

	a.state = stateDone
	a.logger.Info("query completed",
		zap.Int64("execution_time_ms", a.execMS),
		zap.Int32("engine_total_rows", complete.GetTotalRows()),
		zap.Int("assembled_rows", len(a.rows)),
		zap.Int("chunks_decoded", a.chunksDecoded),
		zap.Int("chunks_failed", a.chunksFailed))
}

// result builds the final QueryResult. TotalRows is recomputed from the
// assembled rows; engine-declared counts are advisory only.
func (a *queryAccumulator) result() *QueryResult {
	rows := a.rows
	if rows == nil {
		rows = []Row{}
	}
	names := a.columnNames
	if names == nil {
		names = []string{}
	}
	return &QueryResult{
		Rows:          rows,
		ColumnNames:   names,
		TotalRows:     len(rows),
		ExecutionTime: a.execMS,
	}
}
