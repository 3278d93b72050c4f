// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

// Hand-maintained bindings for the analysis.proto contract. The message
// structs carry standard protobuf struct tags and the legacy message
// methods, which is enough for the grpc proto codec to marshal them via
// the protobuf legacy shim. Regenerate with protoc if the contract grows
// beyond this surface.

package analysispb

import "fmt"

// Dataset is one entry in the engine's dataset catalog.
type Dataset struct {
	Id          string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string   `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	FilePath    string   `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Format      string   `protobuf:"bytes,5,opt,name=format,proto3" json:"format,omitempty"`
	SizeBytes   int64    `protobuf:"varint,6,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	RowCount    int32    `protobuf:"varint,7,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	Tags        []string `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	CreatedAt   string   `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   string   `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Dataset) Reset()         { *m = Dataset{} }
func (m *Dataset) String() string { return fmt.Sprintf("%+v", *m) }
func (*Dataset) ProtoMessage()    {}

func (m *Dataset) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Dataset) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Dataset) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *Dataset) GetFilePath() string {
	if m != nil {
		return m.FilePath
	}
	return ""
}

func (m *Dataset) GetFormat() string {
	if m != nil {
		return m.Format
	}
	return ""
}

func (m *Dataset) GetSizeBytes() int64 {
	if m != nil {
		return m.SizeBytes
	}
	return 0
}

func (m *Dataset) GetRowCount() int32 {
	if m != nil {
		return m.RowCount
	}
	return 0
}

func (m *Dataset) GetTags() []string {
	if m != nil {
		return m.Tags
	}
	return nil
}

func (m *Dataset) GetCreatedAt() string {
	if m != nil {
		return m.CreatedAt
	}
	return ""
}

func (m *Dataset) GetUpdatedAt() string {
	if m != nil {
		return m.UpdatedAt
	}
	return ""
}

// ColumnInfo describes one column of a dataset, including per-column
// statistics computed by the engine at registration time.
type ColumnInfo struct {
	Name        string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DataType    string            `protobuf:"bytes,2,opt,name=data_type,json=dataType,proto3" json:"data_type,omitempty"`
	Nullable    bool              `protobuf:"varint,3,opt,name=nullable,proto3" json:"nullable,omitempty"`
	Description string            `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Statistics  map[string]string `protobuf:"bytes,5,rep,name=statistics,proto3" json:"statistics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *ColumnInfo) Reset()         { *m = ColumnInfo{} }
func (m *ColumnInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*ColumnInfo) ProtoMessage()    {}

func (m *ColumnInfo) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ColumnInfo) GetDataType() string {
	if m != nil {
		return m.DataType
	}
	return ""
}

func (m *ColumnInfo) GetNullable() bool {
	if m != nil {
		return m.Nullable
	}
	return false
}

func (m *ColumnInfo) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *ColumnInfo) GetStatistics() map[string]string {
	if m != nil {
		return m.Statistics
	}
	return nil
}

// DatasetMetadata is the full metadata record for one dataset.
type DatasetMetadata struct {
	Id          string            `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string            `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string            `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Columns     []*ColumnInfo     `protobuf:"bytes,4,rep,name=columns,proto3" json:"columns,omitempty"`
	RowCount    int32             `protobuf:"varint,5,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	SizeBytes   int64             `protobuf:"varint,6,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Format      string            `protobuf:"bytes,7,opt,name=format,proto3" json:"format,omitempty"`
	Tags        []string          `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	Statistics  map[string]string `protobuf:"bytes,9,rep,name=statistics,proto3" json:"statistics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CreatedAt   string            `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   string            `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *DatasetMetadata) Reset()         { *m = DatasetMetadata{} }
func (m *DatasetMetadata) String() string { return fmt.Sprintf("%+v", *m) }
func (*DatasetMetadata) ProtoMessage()    {}

func (m *DatasetMetadata) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *DatasetMetadata) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *DatasetMetadata) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *DatasetMetadata) GetColumns() []*ColumnInfo {
	if m != nil {
		return m.Columns
	}
	return nil
}

func (m *DatasetMetadata) GetRowCount() int32 {
	if m != nil {
		return m.RowCount
	}
	return 0
}

func (m *DatasetMetadata) GetSizeBytes() int64 {
	if m != nil {
		return m.SizeBytes
	}
	return 0
}

func (m *DatasetMetadata) GetFormat() string {
	if m != nil {
		return m.Format
	}
	return ""
}

func (m *DatasetMetadata) GetTags() []string {
	if m != nil {
		return m.Tags
	}
	return nil
}

func (m *DatasetMetadata) GetStatistics() map[string]string {
	if m != nil {
		return m.Statistics
	}
	return nil
}

func (m *DatasetMetadata) GetCreatedAt() string {
	if m != nil {
		return m.CreatedAt
	}
	return ""
}

func (m *DatasetMetadata) GetUpdatedAt() string {
	if m != nil {
		return m.UpdatedAt
	}
	return ""
}

type ListDatasetsRequest struct{}

func (m *ListDatasetsRequest) Reset()         { *m = ListDatasetsRequest{} }
func (m *ListDatasetsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListDatasetsRequest) ProtoMessage()    {}

type ListDatasetsResponse struct {
	Datasets []*Dataset `protobuf:"bytes,1,rep,name=datasets,proto3" json:"datasets,omitempty"`
}

func (m *ListDatasetsResponse) Reset()         { *m = ListDatasetsResponse{} }
func (m *ListDatasetsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListDatasetsResponse) ProtoMessage()    {}

func (m *ListDatasetsResponse) GetDatasets() []*Dataset {
	if m != nil {
		return m.Datasets
	}
	return nil
}

type GetMetadataRequest struct {
	DatasetId string `protobuf:"bytes,1,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
}

func (m *GetMetadataRequest) Reset()         { *m = GetMetadataRequest{} }
func (m *GetMetadataRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetMetadataRequest) ProtoMessage()    {}

func (m *GetMetadataRequest) GetDatasetId() string {
	if m != nil {
		return m.DatasetId
	}
	return ""
}

// GetMetadataResponse carries the metadata record, or nil when the dataset
// does not exist.
type GetMetadataResponse struct {
	Metadata *DatasetMetadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetMetadataResponse) Reset()         { *m = GetMetadataResponse{} }
func (m *GetMetadataResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetMetadataResponse) ProtoMessage()    {}

func (m *GetMetadataResponse) GetMetadata() *DatasetMetadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type ExecuteQueryRequest struct {
	DatasetId string `protobuf:"bytes,1,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	SqlQuery  string `protobuf:"bytes,2,opt,name=sql_query,json=sqlQuery,proto3" json:"sql_query,omitempty"`
	Limit     int32  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ExecuteQueryRequest) Reset()         { *m = ExecuteQueryRequest{} }
func (m *ExecuteQueryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ExecuteQueryRequest) ProtoMessage()    {}

func (m *ExecuteQueryRequest) GetDatasetId() string {
	if m != nil {
		return m.DatasetId
	}
	return ""
}

func (m *ExecuteQueryRequest) GetSqlQuery() string {
	if m != nil {
		return m.SqlQuery
	}
	return ""
}

func (m *ExecuteQueryRequest) GetLimit() int32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

// QueryMetadata is the first frame of a query result stream. The schema
// bytes and estimated row count are advisory; only ColumnNames drives row
// assembly on the client side.
type QueryMetadata struct {
	ArrowSchema   []byte   `protobuf:"bytes,1,opt,name=arrow_schema,json=arrowSchema,proto3" json:"arrow_schema,omitempty"`
	ColumnNames   []string `protobuf:"bytes,2,rep,name=column_names,json=columnNames,proto3" json:"column_names,omitempty"`
	EstimatedRows int32    `protobuf:"varint,3,opt,name=estimated_rows,json=estimatedRows,proto3" json:"estimated_rows,omitempty"`
}

func (m *QueryMetadata) Reset()         { *m = QueryMetadata{} }
func (m *QueryMetadata) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryMetadata) ProtoMessage()    {}

func (m *QueryMetadata) GetArrowSchema() []byte {
	if m != nil {
		return m.ArrowSchema
	}
	return nil
}

func (m *QueryMetadata) GetColumnNames() []string {
	if m != nil {
		return m.ColumnNames
	}
	return nil
}

func (m *QueryMetadata) GetEstimatedRows() int32 {
	if m != nil {
		return m.EstimatedRows
	}
	return 0
}

// QueryDataChunk carries one slice of the result set as an Arrow IPC
// stream. ChunkRows is the row count the engine claims for the payload;
// it is informational and never trusted for result totals.
type QueryDataChunk struct {
	ArrowIpcData []byte `protobuf:"bytes,1,opt,name=arrow_ipc_data,json=arrowIpcData,proto3" json:"arrow_ipc_data,omitempty"`
	ChunkRows    int32  `protobuf:"varint,2,opt,name=chunk_rows,json=chunkRows,proto3" json:"chunk_rows,omitempty"`
	ChunkIndex   int32  `protobuf:"varint,3,opt,name=chunk_index,json=chunkIndex,proto3" json:"chunk_index,omitempty"`
}

func (m *QueryDataChunk) Reset()         { *m = QueryDataChunk{} }
func (m *QueryDataChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDataChunk) ProtoMessage()    {}

func (m *QueryDataChunk) GetArrowIpcData() []byte {
	if m != nil {
		return m.ArrowIpcData
	}
	return nil
}

func (m *QueryDataChunk) GetChunkRows() int32 {
	if m != nil {
		return m.ChunkRows
	}
	return 0
}

func (m *QueryDataChunk) GetChunkIndex() int32 {
	if m != nil {
		return m.ChunkIndex
	}
	return 0
}

// QueryComplete terminates a query result stream.
type QueryComplete struct {
	TotalRows       int32  `protobuf:"varint,1,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	ExecutionTimeMs string `protobuf:"bytes,2,opt,name=execution_time_ms,json=executionTimeMs,proto3" json:"execution_time_ms,omitempty"`
	Success         bool   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage    string `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (m *QueryComplete) Reset()         { *m = QueryComplete{} }
func (m *QueryComplete) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryComplete) ProtoMessage()    {}

func (m *QueryComplete) GetTotalRows() int32 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

func (m *QueryComplete) GetExecutionTimeMs() string {
	if m != nil {
		return m.ExecutionTimeMs
	}
	return ""
}

func (m *QueryComplete) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *QueryComplete) GetErrorMessage() string {
	if m != nil {
		return m.ErrorMessage
	}
	return ""
}

// ExecuteQueryResponse is one frame of the query result stream. Exactly
// one of the oneof variants is populated per frame.
type ExecuteQueryResponse struct {
	// Types that are valid to be assigned to ResponseType:
	//	*ExecuteQueryResponse_Metadata
	//	*ExecuteQueryResponse_DataChunk
	//	*ExecuteQueryResponse_Complete
	ResponseType isExecuteQueryResponse_ResponseType `protobuf_oneof:"response_type"`
}

func (m *ExecuteQueryResponse) Reset()         { *m = ExecuteQueryResponse{} }
func (m *ExecuteQueryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ExecuteQueryResponse) ProtoMessage()    {}

type isExecuteQueryResponse_ResponseType interface {
	isExecuteQueryResponse_ResponseType()
}

type ExecuteQueryResponse_Metadata struct {
	Metadata *QueryMetadata `protobuf:"bytes,1,opt,name=metadata,proto3,oneof"`
}

type ExecuteQueryResponse_DataChunk struct {
	DataChunk *QueryDataChunk `protobuf:"bytes,2,opt,name=data_chunk,json=dataChunk,proto3,oneof"`
}

type ExecuteQueryResponse_Complete struct {
	Complete *QueryComplete `protobuf:"bytes,3,opt,name=complete,proto3,oneof"`
}

func (*ExecuteQueryResponse_Metadata) isExecuteQueryResponse_ResponseType()  {}
func (*ExecuteQueryResponse_DataChunk) isExecuteQueryResponse_ResponseType() {}
func (*ExecuteQueryResponse_Complete) isExecuteQueryResponse_ResponseType()  {}

func (m *ExecuteQueryResponse) GetResponseType() isExecuteQueryResponse_ResponseType {
	if m != nil {
		return m.ResponseType
	}
	return nil
}

func (m *ExecuteQueryResponse) GetMetadata() *QueryMetadata {
	if x, ok := m.GetResponseType().(*ExecuteQueryResponse_Metadata); ok {
		return x.Metadata
	}
	return nil
}

func (m *ExecuteQueryResponse) GetDataChunk() *QueryDataChunk {
	if x, ok := m.GetResponseType().(*ExecuteQueryResponse_DataChunk); ok {
		return x.DataChunk
	}
	return nil
}

func (m *ExecuteQueryResponse) GetComplete() *QueryComplete {
	if x, ok := m.GetResponseType().(*ExecuteQueryResponse_Complete); ok {
		return x.Complete
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*ExecuteQueryResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ExecuteQueryResponse_Metadata)(nil),
		(*ExecuteQueryResponse_DataChunk)(nil),
		(*ExecuteQueryResponse_Complete)(nil),
	}
}

type AddDatasetRequest struct {
	Name        string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description string   `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	SourcePath  string   `protobuf:"bytes,3,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Format      string   `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Tags        []string `protobuf:"bytes,5,rep,name=tags,proto3" json:"tags,omitempty"`
}

func (m *AddDatasetRequest) Reset()         { *m = AddDatasetRequest{} }
func (m *AddDatasetRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AddDatasetRequest) ProtoMessage()    {}

func (m *AddDatasetRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *AddDatasetRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *AddDatasetRequest) GetSourcePath() string {
	if m != nil {
		return m.SourcePath
	}
	return ""
}

func (m *AddDatasetRequest) GetFormat() string {
	if m != nil {
		return m.Format
	}
	return ""
}

func (m *AddDatasetRequest) GetTags() []string {
	if m != nil {
		return m.Tags
	}
	return nil
}

type AddDatasetResponse struct {
	Success   bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	DatasetId string   `protobuf:"bytes,2,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	Message   string   `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Dataset   *Dataset `protobuf:"bytes,4,opt,name=dataset,proto3" json:"dataset,omitempty"`
}

func (m *AddDatasetResponse) Reset()         { *m = AddDatasetResponse{} }
func (m *AddDatasetResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AddDatasetResponse) ProtoMessage()    {}

func (m *AddDatasetResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *AddDatasetResponse) GetDatasetId() string {
	if m != nil {
		return m.DatasetId
	}
	return ""
}

func (m *AddDatasetResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *AddDatasetResponse) GetDataset() *Dataset {
	if m != nil {
		return m.Dataset
	}
	return nil
}

type HealthCheckRequest struct{}

func (m *HealthCheckRequest) Reset()         { *m = HealthCheckRequest{} }
func (m *HealthCheckRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*HealthCheckRequest) ProtoMessage()    {}

type HealthCheckResponse struct {
	Healthy bool   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *HealthCheckResponse) Reset()         { *m = HealthCheckResponse{} }
func (m *HealthCheckResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*HealthCheckResponse) ProtoMessage()    {}

func (m *HealthCheckResponse) GetHealthy() bool {
	if m != nil {
		return m.Healthy
	}
	return false
}

func (m *HealthCheckResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}
