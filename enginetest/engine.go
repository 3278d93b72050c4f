// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package enginetest provides an in-memory analysis engine for exercising
// the bridge client without a real deployment. It implements the full
// AnalysisService surface: a mutable dataset catalog, metadata lookup,
// and streaming query execution that reproduces the engine's chunking
// behavior (1000-row slices, each a complete Arrow IPC stream).
//
// Datasets are registered either with [Engine.RegisterDataset], which
// attaches a result batch replayed for every query, or through the
// AddDataset RPC, which registers a catalog entry the way the real
// engine's import path does. [Engine.Script] overrides the frame
// sequence for one dataset verbatim, which is how the protocol edge
// cases (corrupt chunks, missing completion, trailing frames) are
// driven in tests.
package enginetest

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/quarry-data/analysis-bridge/analysispb"
)

// ChunkSize is the engine's row-slice size for streamed results.
const ChunkSize = 1000

// Fixture is one registered dataset and the result it replays.
type Fixture struct {
	Dataset  *analysispb.Dataset
	Metadata *analysispb.DatasetMetadata
	// Batch holds the rows returned for any query against this dataset.
	// Nil means every query returns an empty result.
	Batch arrow.Record
	// Compress zstd-compresses each chunk payload at the transport
	// level, as the engine does for wide results.
	Compress bool
	// ExecutionTimeMs overrides the reported duration. Empty means the
	// engine reports its measured wall time.
	ExecutionTimeMs string
}

// Engine is an in-memory AnalysisService implementation. Safe for
// concurrent use.
type Engine struct {
	analysispb.UnimplementedAnalysisServiceServer

	mu       sync.Mutex
	fixtures map[string]*Fixture
	scripts  map[string][]*analysispb.ExecuteQueryResponse
}

// New creates an empty in-memory engine.
func New() *Engine {
	return &Engine{
		fixtures: make(map[string]*Fixture),
		scripts:  make(map[string][]*analysispb.ExecuteQueryResponse),
	}
}

// RegisterDataset adds a dataset to the catalog. The fixture's Dataset
// must carry an Id; missing metadata is derived from the batch schema.
func (e *Engine) RegisterDataset(f *Fixture) {
	if f.Metadata == nil {
		f.Metadata = metadataForFixture(f)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fixtures[f.Dataset.GetId()] = f
}

// Script makes ExecuteQuery replay the given frames verbatim for the
// dataset, bypassing batch slicing entirely.
func (e *Engine) Script(datasetID string, frames ...*analysispb.ExecuteQueryResponse) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scripts[datasetID] = frames
}

func metadataForFixture(f *Fixture) *analysispb.DatasetMetadata {
	md := &analysispb.DatasetMetadata{
		Id:          f.Dataset.GetId(),
		Name:        f.Dataset.GetName(),
		Description: f.Dataset.GetDescription(),
		Format:      f.Dataset.GetFormat(),
		RowCount:    f.Dataset.GetRowCount(),
		SizeBytes:   f.Dataset.GetSizeBytes(),
		Tags:        f.Dataset.GetTags(),
		Statistics:  map[string]string{},
		CreatedAt:   f.Dataset.GetCreatedAt(),
		UpdatedAt:   f.Dataset.GetUpdatedAt(),
	}
	if f.Batch != nil {
		md.RowCount = int32(f.Batch.NumRows())
		md.Statistics["row_count"] = strconv.FormatInt(f.Batch.NumRows(), 10)
		for _, field := range f.Batch.Schema().Fields() {
			md.Columns = append(md.Columns, &analysispb.ColumnInfo{
				Name:       field.Name,
				DataType:   field.Type.String(),
				Nullable:   field.Nullable,
				Statistics: map[string]string{},
			})
		}
	}
	return md
}

func (e *Engine) ListDatasets(_ context.Context, _ *analysispb.ListDatasetsRequest) (*analysispb.ListDatasetsResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := &analysispb.ListDatasetsResponse{}
	for _, f := range e.fixtures {
		resp.Datasets = append(resp.Datasets, f.Dataset)
	}
	return resp, nil
}

func (e *Engine) GetMetadata(_ context.Context, req *analysispb.GetMetadataRequest) (*analysispb.GetMetadataResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, ok := e.fixtures[req.GetDatasetId()]
	if !ok {
		return &analysispb.GetMetadataResponse{}, nil
	}
	return &analysispb.GetMetadataResponse{Metadata: f.Metadata}, nil
}

// AddDataset registers a bare catalog entry, mirroring the engine's
// import path: required name and source path, generated ds_ identifier.
func (e *Engine) AddDataset(_ context.Context, req *analysispb.AddDatasetRequest) (*analysispb.AddDatasetResponse, error) {
	if req.GetName() == "" {
		return &analysispb.AddDatasetResponse{Success: false, Message: "Dataset name is required"}, nil
	}
	if req.GetSourcePath() == "" {
		return &analysispb.AddDatasetResponse{Success: false, Message: "Source path is required"}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ds := &analysispb.Dataset{
		Id:          "ds_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Name:        req.GetName(),
		Description: req.GetDescription(),
		FilePath:    req.GetSourcePath(),
		Format:      req.GetFormat(),
		Tags:        req.GetTags(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.RegisterDataset(&Fixture{Dataset: ds})

	return &analysispb.AddDatasetResponse{
		Success:   true,
		DatasetId: ds.Id,
		Message:   fmt.Sprintf("Dataset '%s' added successfully", ds.Id),
		Dataset:   ds,
	}, nil
}

func (e *Engine) HealthCheck(_ context.Context, _ *analysispb.HealthCheckRequest) (*analysispb.HealthCheckResponse, error) {
	return &analysispb.HealthCheckResponse{Healthy: true, Message: "ok"}, nil
}

// ExecuteQuery streams a scripted or fixture-backed result. Fixture
// results follow the engine's frame order: metadata, ChunkSize-row data
// chunks, completion.
func (e *Engine) ExecuteQuery(req *analysispb.ExecuteQueryRequest, stream analysispb.AnalysisService_ExecuteQueryServer) error {
	e.mu.Lock()
	script, scripted := e.scripts[req.GetDatasetId()]
	f, ok := e.fixtures[req.GetDatasetId()]
	e.mu.Unlock()

	if scripted {
		for _, frame := range script {
			if err := stream.Send(frame); err != nil {
				return err
			}
		}
		return nil
	}

	start := time.Now()
	if !ok {
		return stream.Send(completeFrame(0, start, false,
			fmt.Sprintf("Dataset '%s' not found", req.GetDatasetId()), ""))
	}

	batch := f.Batch
	if batch == nil {
		if err := stream.Send(metadataFrame(nil, nil, 0)); err != nil {
			return err
		}
		return stream.Send(completeFrame(0, start, true, "", f.ExecutionTimeMs))
	}

	limit := req.GetLimit()
	rows := batch.NumRows()
	if limit > 0 && int64(limit) < rows {
		rows = int64(limit)
	}

	names := make([]string, 0, batch.Schema().NumFields())
	for _, field := range batch.Schema().Fields() {
		names = append(names, field.Name)
	}
	if err := stream.Send(metadataFrame(batch.Schema(), names, int32(rows))); err != nil {
		return err
	}

	var sent int32
	chunkIndex := int32(0)
	for offset := int64(0); offset < rows; offset += ChunkSize {
		end := offset + ChunkSize
		if end > rows {
			end = rows
		}
		slice := batch.NewSlice(offset, end)
		payload, err := EncodeChunk(slice, f.Compress)
		slice.Release()
		if err != nil {
			return err
		}
		chunkRows := int32(end - offset)
		frame := &analysispb.ExecuteQueryResponse{
			ResponseType: &analysispb.ExecuteQueryResponse_DataChunk{
				DataChunk: &analysispb.QueryDataChunk{
					ArrowIpcData: payload,
					ChunkRows:    chunkRows,
					ChunkIndex:   chunkIndex,
				},
			},
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
		sent += chunkRows
		chunkIndex++
	}

	return stream.Send(completeFrame(sent, start, true, "", f.ExecutionTimeMs))
}

func metadataFrame(schema *arrow.Schema, names []string, estimated int32) *analysispb.ExecuteQueryResponse {
	md := &analysispb.QueryMetadata{
		ColumnNames:   names,
		EstimatedRows: estimated,
	}
	if schema != nil {
		md.ArrowSchema = encodeSchema(schema)
	}
	return &analysispb.ExecuteQueryResponse{
		ResponseType: &analysispb.ExecuteQueryResponse_Metadata{Metadata: md},
	}
}

func completeFrame(totalRows int32, start time.Time, success bool, errMsg, overrideMs string) *analysispb.ExecuteQueryResponse {
	ms := overrideMs
	if ms == "" {
		ms = strconv.FormatInt(time.Since(start).Milliseconds(), 10)
	}
	return &analysispb.ExecuteQueryResponse{
		ResponseType: &analysispb.ExecuteQueryResponse_Complete{
			Complete: &analysispb.QueryComplete{
				TotalRows:       totalRows,
				ExecutionTimeMs: ms,
				Success:         success,
				ErrorMessage:    errMsg,
			},
		},
	}
}

// EncodeChunk serializes one record batch as a complete Arrow IPC stream,
// optionally zstd-compressed the way the engine compresses large chunks.
func EncodeChunk(batch arrow.Record, compress bool) ([]byte, error) {
	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(batch.Schema()))
	if err := writer.Write(batch); err != nil {
		writer.Close()
		return nil, fmt.Errorf("writing chunk batch: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing chunk stream: %w", err)
	}
	if !compress {
		return buf.Bytes(), nil
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(buf.Bytes(), nil), nil
}

// encodeSchema renders a schema as an empty IPC stream, which is how the
// engine ships the advisory arrow_schema bytes on the metadata frame.
func encodeSchema(schema *arrow.Schema) []byte {
	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(schema))
	writer.Close()
	return buf.Bytes()
}
