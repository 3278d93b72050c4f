// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/quarry-data/analysis-bridge/analysispb"
)

// Client talks to a remote analysis engine. It owns one lazily
// established gRPC channel, reused across calls and safe for concurrent
// use; each streaming query gets its own accumulator, so concurrent
// queries never share frame state.
//
// Channel security is decided once from the endpoint string at
// construction: an https/grpcs scheme or the conventional :443 port
// selects TLS, anything else dials in the clear.
type Client struct {
	target string // host:port, scheme stripped
	secure bool

	logger         *zap.Logger
	metrics        *clientMetrics
	requestTimeout time.Duration
	dialOpts       []grpc.DialOption

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub analysispb.AnalysisServiceClient
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger for progress and recovery
// logging. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used for the
// bridge's frame, chunk, and row instruments. The default is the global
// provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *Client) {
		c.metrics = newClientMetrics(provider)
	}
}

// WithRequestTimeout caps every call that arrives without its own
// deadline. Zero (the default) leaves deadlines entirely to callers.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = d
	}
}

// WithDialOptions appends extra gRPC dial options, applied after the
// transport credentials derived from the endpoint.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// NewClient creates a client for the engine at the given endpoint, e.g.
// "http://localhost:50051" or "https://engine.internal:443". No
// connection is made until the first call.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	target, secure := parseEndpoint(endpoint)
	if target == "" {
		return nil, &BridgeError{Kind: KindConfig, Op: "NewClient",
			Err: fmt.Errorf("empty engine endpoint %q", endpoint)}
	}

	c := &Client{
		target: target,
		secure: secure,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = newClientMetrics(nil)
	}
	return c, nil
}

// parseEndpoint derives the dial target and channel security from an
// endpoint string. The scheme is stripped; TLS is selected by an
// https/grpcs scheme or the conventional secure port.
func parseEndpoint(endpoint string) (target string, secure bool) {
	secure = strings.HasPrefix(endpoint, "https://") ||
		strings.HasPrefix(endpoint, "grpcs://") ||
		strings.Contains(endpoint, ":443")
	for _, scheme := range []string{"https://", "http://", "grpcs://", "grpc://"} {
		endpoint = strings.TrimPrefix(endpoint, scheme)
	}
	return strings.TrimSuffix(endpoint, "/"), secure
}

// channel returns the shared stub, establishing the channel on first use.
// Exactly one channel is created even when concurrent first calls race;
// after Close the next call re-establishes it.
func (c *Client) channel() (analysispb.AnalysisServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stub != nil {
		return c.stub, nil
	}

	creds := insecure.NewCredentials()
	if c.secure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, c.dialOpts...)

	conn, err := grpc.NewClient(c.target, dialOpts...)
	if err != nil {
		return nil, &BridgeError{Kind: KindTransport, Op: "connect",
			Err: fmt.Errorf("creating channel to %s: %w", c.target, err)}
	}

	c.logger.Info("engine channel established",
		zap.String("target", c.target),
		zap.Bool("tls", c.secure))

	c.conn = conn
	c.stub = analysispb.NewAnalysisServiceClient(conn)
	return c.stub, nil
}

// Close releases the channel. The client remains usable: the next call
// dials a fresh channel lazily.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.stub = nil
	return err
}

// callContext applies the client's default timeout when the caller
// supplied no deadline of its own.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && c.requestTimeout > 0 {
		return context.WithTimeout(ctx, c.requestTimeout)
	}
	return context.WithCancel(ctx)
}

// ListDatasets returns the engine's dataset catalog.
func (c *Client) ListDatasets(ctx context.Context) ([]Dataset, error) {
	stub, err := c.channel()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.ListDatasets(ctx, &analysispb.ListDatasetsRequest{})
	if err != nil {
		return nil, classifyRPC("ListDatasets", err)
	}

	datasets := make([]Dataset, 0, len(resp.GetDatasets()))
	for _, d := range resp.GetDatasets() {
		datasets = append(datasets, datasetFromProto(d))
	}
	c.logger.Debug("listed datasets", zap.Int("count", len(datasets)))
	return datasets, nil
}

// GetMetadata looks up the metadata record for one dataset. An unknown
// dataset is an absence (found == false), not an error; a returned record
// is always fully populated.
func (c *Client) GetMetadata(ctx context.Context, datasetID string) (meta *DatasetMetadata, found bool, err error) {
	stub, err := c.channel()
	if err != nil {
		return nil, false, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.GetMetadata(ctx, &analysispb.GetMetadataRequest{DatasetId: datasetID})
	if err != nil {
		return nil, false, classifyRPC("GetMetadata", err)
	}
	if resp.GetMetadata() == nil {
		c.logger.Debug("dataset not found", zap.String("dataset_id", datasetID))
		return nil, false, nil
	}
	return metadataFromProto(resp.GetMetadata()), true, nil
}

// ExecuteQuery runs a SQL query against one dataset and assembles the
// streamed result. A non-positive limit falls back to DefaultRowLimit.
//
// The stream is consumed sequentially; once the completion frame is
// processed, no further frames are read and the stream is cancelled.
// A stream that ends without a completion frame yields a partial result
// with ExecutionTime 0. Transport and mid-stream RPC faults discard any
// accumulated rows and surface as a *BridgeError.
func (c *Client) ExecuteQuery(ctx context.Context, datasetID, sqlQuery string, limit int32) (*QueryResult, error) {
	if limit <= 0 {
		limit = DefaultRowLimit
	}

	stub, err := c.channel()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	logger := c.logger.With(
		zap.String("query_id", uuid.NewString()),
		zap.String("dataset_id", datasetID))
	logger.Info("executing query",
		zap.String("sql", sqlQuery),
		zap.Int32("limit", limit))

	start := time.Now()
	stream, err := stub.ExecuteQuery(ctx, &analysispb.ExecuteQueryRequest{
		DatasetId: datasetID,
		SqlQuery:  sqlQuery,
		Limit:     limit,
	})
	if err != nil {
		return nil, classifyRPC("ExecuteQuery", err)
	}

	acc := newQueryAccumulator(logger, c.metrics)
	for !acc.done() {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			// Remote closed without a completion frame: return what was
			// accumulated as a partial result rather than failing.
			logger.Warn("stream ended without completion frame",
				zap.Int("rows_so_far", len(acc.rows)))
			break
		}
		if err != nil {
			return nil, classifyRPC("ExecuteQuery", err)
		}
		acc.consume(ctx, frame)
	}

	result := acc.result()
	c.metrics.recordQuery(ctx, time.Since(start), result.TotalRows)
	return result, nil
}

// HealthCheck probes the engine by listing datasets. It reports liveness
// only; the underlying error, if any, is logged and swallowed.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if _, err := c.ListDatasets(ctx); err != nil {
		c.logger.Warn("engine health check failed", zap.Error(err))
		return false
	}
	return true
}
