// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package enginetest

import (
	"bytes"
	"context"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarry-data/analysis-bridge/analysispb"
)

func buildBatch(t *testing.T, n int) arrow.Record {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "v", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	rb := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer rb.Release()
	for i := 0; i < n; i++ {
		rb.Field(0).(*array.Int64Builder).Append(int64(i))
	}
	return rb.NewRecord()
}

func TestRegisterDatasetDerivesMetadata(t *testing.T) {
	engine := New()
	batch := buildBatch(t, 7)
	t.Cleanup(batch.Release)

	engine.RegisterDataset(&Fixture{
		Dataset: &analysispb.Dataset{Id: "d1", Name: "D1"},
		Batch:   batch,
	})

	resp, err := engine.GetMetadata(context.Background(), &analysispb.GetMetadataRequest{DatasetId: "d1"})
	require.NoError(t, err)
	md := resp.GetMetadata()
	require.NotNil(t, md)
	assert.EqualValues(t, 7, md.GetRowCount())
	require.Len(t, md.GetColumns(), 1)
	assert.Equal(t, "v", md.GetColumns()[0].GetName())
	assert.Equal(t, "int64", md.GetColumns()[0].GetDataType())
}

func TestGetMetadataUnknownDataset(t *testing.T) {
	resp, err := New().GetMetadata(context.Background(), &analysispb.GetMetadataRequest{DatasetId: "nope"})
	require.NoError(t, err)
	assert.Nil(t, resp.GetMetadata())
}

func TestAddDatasetValidation(t *testing.T) {
	engine := New()

	resp, err := engine.AddDataset(context.Background(), &analysispb.AddDatasetRequest{SourcePath: "/tmp/x"})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "Dataset name is required", resp.GetMessage())

	resp, err = engine.AddDataset(context.Background(), &analysispb.AddDatasetRequest{Name: "x"})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "Source path is required", resp.GetMessage())

	resp, err = engine.AddDataset(context.Background(), &analysispb.AddDatasetRequest{
		Name:       "x",
		SourcePath: "/tmp/x.parquet",
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	assert.NotContains(t, resp.GetDatasetId(), "-")

	list, err := engine.ListDatasets(context.Background(), &analysispb.ListDatasetsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetDatasets(), 1)
	assert.Equal(t, resp.GetDatasetId(), list.GetDatasets()[0].GetId())
}

func TestEncodeChunkRoundTrip(t *testing.T) {
	batch := buildBatch(t, 3)
	t.Cleanup(batch.Release)

	payload, err := EncodeChunk(batch, false)
	require.NoError(t, err)

	reader, err := ipc.NewReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer reader.Release()
	require.True(t, reader.Next())
	assert.EqualValues(t, 3, reader.Record().NumRows())
	assert.False(t, reader.Next())
	require.NoError(t, reader.Err())
}

func TestEncodeChunkCompressed(t *testing.T) {
	batch := buildBatch(t, 3)
	t.Cleanup(batch.Release)

	payload, err := EncodeChunk(batch, true)
	require.NoError(t, err)
	// RFC 8878 frame magic.
	assert.True(t, bytes.HasPrefix(payload, []byte{0x28, 0xb5, 0x2f, 0xfd}))
}
