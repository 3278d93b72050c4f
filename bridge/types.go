// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"github.com/quarry-data/analysis-bridge/analysispb"
)

// DefaultRowLimit is applied when a query is executed without a positive
// row limit.
const DefaultRowLimit = 1000

// Row is one result record, keyed by column name. Values are the canonical
// string renderings produced by the cell stringifier, including the "NULL"
// and "ERROR" sentinels.
type Row map[string]string

// QueryResult is the assembled outcome of one streaming query.
type QueryResult struct {
	// Rows holds the decoded records in arrival order.
	Rows []Row
	// ColumnNames is the column list from the stream's metadata frame, in
	// engine order.
	ColumnNames []string
	// TotalRows is always len(Rows). Per-chunk counts declared by the
	// engine are advisory and never folded into this value.
	TotalRows int
	// ExecutionTime is the engine-reported execution duration in
	// milliseconds, or 0 when the stream ended without a parseable value.
	ExecutionTime int64
}

// Dataset is one catalog entry returned by ListDatasets.
type Dataset struct {
	ID          string
	Name        string
	Description string
	FilePath    string
	Format      string
	SizeBytes   int64
	RowCount    int32
	Tags        []string
	CreatedAt   string
	UpdatedAt   string
}

// ColumnInfo describes one column of a dataset.
type ColumnInfo struct {
	Name        string
	DataType    string
	Nullable    bool
	Description string
	Statistics  map[string]string
}

// DatasetMetadata is the full metadata record for one dataset. It is
// either fully populated or absent; GetMetadata never returns a partial
// record.
type DatasetMetadata struct {
	ID          string
	Name        string
	Description string
	Columns     []ColumnInfo
	RowCount    int32
	SizeBytes   int64
	Format      string
	Tags        []string
	Statistics  map[string]string
	CreatedAt   string
	UpdatedAt   string
}

func datasetFromProto(p *analysispb.Dataset) Dataset {
	return Dataset{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Description: p.GetDescription(),
		FilePath:    p.GetFilePath(),
		Format:      p.GetFormat(),
		SizeBytes:   p.GetSizeBytes(),
		RowCount:    p.GetRowCount(),
		Tags:        p.GetTags(),
		CreatedAt:   p.GetCreatedAt(),
		UpdatedAt:   p.GetUpdatedAt(),
	}
}

func metadataFromProto(p *analysispb.DatasetMetadata) *DatasetMetadata {
	if p == nil {
		return nil
	}
	cols := make([]ColumnInfo, 0, len(p.GetColumns()))
	for _, c := range p.GetColumns() {
		cols = append(cols, ColumnInfo{
			Name:        c.GetName(),
			DataType:    c.GetDataType(),
			Nullable:    c.GetNullable(),
			Description: c.GetDescription(),
			Statistics:  c.GetStatistics(),
		})
	}
	return &DatasetMetadata{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Description: p.GetDescription(),
		Columns:     cols,
		RowCount:    p.GetRowCount(),
		SizeBytes:   p.GetSizeBytes(),
		Format:      p.GetFormat(),
		Tags:        p.GetTags(),
		Statistics:  p.GetStatistics(),
		CreatedAt:   p.GetCreatedAt(),
		UpdatedAt:   p.GetUpdatedAt(),
	}
}
