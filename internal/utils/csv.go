package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ddmmyyPattern matches the first six-digit group in a filename,
// interpreted as DDMMYY (e.g. Urgent_Stock_050425.csv → 2025-04-25).
var ddmmyyPattern = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})`)

// SnapshotDateFromFilename extracts a DDMMYY digit group from fileName and
// returns it as YYYY-MM-DD. Returns "" when no such group is present.
func SnapshotDateFromFilename(fileName string) string {
	m := ddmmyyPattern.FindStringSubmatch(fileName)
	if m == nil {
		return ""
	}

	return fmt.Sprintf("20%s-%s-%s", m[3], m[2], m[1])
}

// normalizeKey strips the BOM, spaces, and underscores from a CSV header key
// and lowercases it, so that "Item Code", "item_code" and "ItemCode" all
// match the same field.
func normalizeKey(key string) string {
	key = strings.ReplaceAll(key, "\uFEFF", "")
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	return strings.ToLower(key)
}

// FindField looks up targetName in row using normalized key matching.
// Returns the value and an ok flag.
func FindField(row map[string]string, targetName string) (string, bool) {
	normTarget := normalizeKey(targetName)
	for k, v := range row {
		if normalizeKey(k) == normTarget {
			return v, true
		}
	}
	return "", false
}

// ParseCSVRows parses csvContent into one map per data row, keyed by the
// header row, and attaches the snapshot date to every row under the
// "snapshot_date" key. The date comes from the filename when it carries a
// DDMMYY group, otherwise from a SnapshotDate column of the first row that
// has one.
//
// Ragged rows are tolerated (missing trailing cells become empty strings).
// Returns an error only when the CSV is structurally unreadable.
func ParseCSVRows(csvContent, csvFilename string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(csvContent))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}

	snapshotDate := SnapshotDateFromFilename(csvFilename)

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}

		if snapshotDate == "" {
			if fromColumn, ok := FindField(row, "snapshotdate"); ok && strings.TrimSpace(fromColumn) != "" {
				snapshotDate = strings.TrimSpace(fromColumn)
			}
		}
		if snapshotDate != "" {
			row["snapshot_date"] = snapshotDate
		}

		rows = append(rows, row)
	}

	return rows, nil
}
