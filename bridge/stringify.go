// © Copyright 2026, Quarry Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Sentinel strings substituted for cells that carry no usable value.
const (
	// NullSentinel is returned for cells whose null bitmap is set.
	NullSentinel = "NULL"
	// ErrorSentinel is returned for cells that cannot be rendered: an
	// unsupported column type, or a cell access that faults. A bad cell
	// never fails the surrounding row or query.
	ErrorSentinel = "ERROR"
)

// stringifyCell renders one cell of a decoded column in its canonical
// textual form. It is deterministic and has no side effects.
func stringifyCell(col arrow.Array, row int) (s string) {
	defer func() {
		if recover() != nil {
			s = ErrorSentinel
		}
	}()

	if row < 0 || row >= col.Len() || col.IsNull(row) {
		return NullSentinel
	}

	switch c := col.(type) {
	case *array.Boolean:
		return strconv.FormatBool(c.Value(row))
	case *array.Int8:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int16:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int64:
		return strconv.FormatInt(c.Value(row), 10)
	case *array.Uint8:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint16:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint64:
		return strconv.FormatUint(c.Value(row), 10)
	case *array.Float32:
		return strconv.FormatFloat(float64(c.Value(row)), 'g', -1, 32)
	case *array.Float64:
		return strconv.FormatFloat(c.Value(row), 'g', -1, 64)
	case *array.String:
		return c.Value(row)
	case *array.LargeString:
		return c.Value(row)
	case *array.Binary:
		return fmt.Sprintf("%x", c.Value(row))
	case *array.Date32:
		return c.Value(row).ToTime().UTC().Format("2006-01-02")
	case *array.Date64:
		return c.Value(row).ToTime().UTC().Format("2006-01-02")
	case *array.Timestamp:
		dt, ok := c.DataType().(*arrow.TimestampType)
		if !ok {
			return ErrorSentinel
		}
		return c.Value(row).ToTime(dt.Unit).UTC().Format("2006-01-02 15:04:05")
	default:
		return ErrorSentinel
	}
}
