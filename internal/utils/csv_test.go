// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDateFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{name: "ddmmyy group", fileName: "Urgent_Stock_050425.csv", want: "2025-04-05"},
		{name: "ddmmyy in the middle", fileName: "stock_200826_final.csv", want: "2026-08-20"},
		{name: "no digit group", fileName: "stock.csv", want: ""},
		{name: "empty filename", fileName: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapshotDateFromFilename(tt.fileName))
		})
	}
}

func TestFindField_NormalizesHeaderVariants(t *testing.T) {
	row := map[string]string{
		"Item Code":    "100123",
		"current_stock": "42",
		"WksToOOS":     "3.5",
	}

	v, ok := FindField(row, "itemcode")
	require.True(t, ok)
	assert.Equal(t, "100123", v)

	v, ok = FindField(row, "CurrentStock")
	require.True(t, ok)
	assert.Equal(t, "42", v)

	v, ok = FindField(row, "wks_to_oos")
	require.True(t, ok)
	assert.Equal(t, "3.5", v)

	_, ok = FindField(row, "supplier_name")
	assert.False(t, ok)
}

func TestFindField_StripsByteOrderMark(t *testing.T) {
	row := map[string]string{"\uFEFFSupplierName": "ACME"}

	v, ok := FindField(row, "supplier_name")
	require.True(t, ok)
	assert.Equal(t, "ACME", v)
}

func TestParseCSVRows_BOMPrefixedHeader(t *testing.T) {
	rows, err := ParseCSVRows("\uFEFFItemCode,ItemName\n100123,Widget", "stock.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, ok := FindField(rows[0], "itemcode")
	require.True(t, ok)
	assert.Equal(t, "100123", v)
}

func TestParseCSVRows_AttachesSnapshotDateFromFilename(t *testing.T) {
	rows, err := ParseCSVRows("ItemCode,ItemName\n100123,Widget", "Urgent_Stock_050425.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "100123", rows[0]["ItemCode"])
	assert.Equal(t, "2025-04-05", rows[0]["snapshot_date"])
}

func TestParseCSVRows_SnapshotDateColumnFallback(t *testing.T) {
	csv := "ItemCode,SnapshotDate\n100123,2026-01-15\n100124,"
	rows, err := ParseCSVRows(csv, "stock.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-01-15", rows[0]["snapshot_date"])
	// Date found in the first row carries over to later rows.
	assert.Equal(t, "2026-01-15", rows[1]["snapshot_date"])
}

func TestParseCSVRows_NoDateLeavesRowsWithoutSnapshotKey(t *testing.T) {
	rows, err := ParseCSVRows("ItemCode\n100123", "stock.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok := rows[0]["snapshot_date"]
	assert.False(t, ok)
}

func TestParseCSVRows_RaggedRowsAreTolerated(t *testing.T) {
	csv := "a,b,c\n1,2\n3,4,5,6"
	rows, err := ParseCSVRows(csv, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "", rows[0]["c"])
	assert.Equal(t, "5", rows[1]["c"])
}

func TestParseCSVRows_EmptyContent(t *testing.T) {
	rows, err := ParseCSVRows("", "stock.csv")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSVRows_HeaderOnly(t *testing.T) {
	rows, err := ParseCSVRows("a,b,c\n", "stock.csv")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSVRows_MalformedQuoting(t *testing.T) {
	_, err := ParseCSVRows("a,\"b\nc,d", "stock.csv")
	require.Error(t, err)
}
