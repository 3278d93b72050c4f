// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "analysis_bridge"

// Frame kind attribute values recorded on the frame counter.
const (
	frameKindMetadata  = "metadata"
	frameKindDataChunk = "data_chunk"
	frameKindComplete  = "complete"
	frameKindUnknown   = "unknown"
)

// clientMetrics holds the bridge's OTel instruments. A nil receiver is
// valid and records nothing, so instrumentation stays optional.
type clientMetrics struct {
	frameCounter      metric.Int64Counter
	chunkCounter      metric.Int64Counter
	rowCounter        metric.Int64Counter
	queryDuration     metric.Float64Histogram
	localFallbackUsed metric.Int64Counter
}

// newClientMetrics creates the bridge instruments on the given provider,
// falling back to the global MeterProvider when nil.
func newClientMetrics(provider metric.MeterProvider) *clientMetrics {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName)

	m := &clientMetrics{}
	m.frameCounter, _ = meter.Int64Counter("analysis.client.frames",
		metric.WithUnit("{frame}"),
		metric.WithDescription("Stream frames consumed, by frame kind"),
	)
	m.chunkCounter, _ = meter.Int64Counter("analysis.client.chunks",
		metric.WithUnit("{chunk}"),
		metric.WithDescription("Data chunks processed, by decode outcome"),
	)
	m.rowCounter, _ = meter.Int64Counter("analysis.client.rows",
		metric.WithUnit("{row}"),
		metric.WithDescription("Rows assembled from decoded chunks"),
	)
	m.queryDuration, _ = meter.Float64Histogram("analysis.client.query.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall-clock duration of ExecuteQuery calls"),
	)
	m.localFallbackUsed, _ = meter.Int64Counter("analysis.client.recoveries",
		metric.WithUnit("{event}"),
		metric.WithDescription("Locally recovered faults (bad chunks, bad durations)"),
	)
	return m
}

func (m *clientMetrics) recordFrame(ctx context.Context, kind string) {
	if m == nil || m.frameCounter == nil {
		return
	}
	m.frameCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("frame.kind", kind)))
}

func (m *clientMetrics) recordChunk(ctx context.Context, ok bool, rows int) {
	if m == nil || m.chunkCounter == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "decode_error"
		m.localFallbackUsed.Add(ctx, 1, metric.WithAttributes(attribute.String("fault", "chunk_decode")))
	}
	m.chunkCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("decode.outcome", outcome)))
	if rows > 0 {
		m.rowCounter.Add(ctx, int64(rows))
	}
}

func (m *clientMetrics) recordQuery(ctx context.Context, elapsed time.Duration, rows int) {
	if m == nil || m.queryDuration == nil {
		return
	}
	m.queryDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.Int("result.rows", rows)))
}
