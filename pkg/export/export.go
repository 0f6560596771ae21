// Package export materializes consolidated entities as tabular artifacts.
// The CSV format is the contract consumed by downstream tooling: UTF-8,
// RFC 4180 quoting, LF line endings, fixed head and tail columns around the
// alphabetically-sorted attribute union.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/trilogy-group/nexus-agents/ent"
)

const sheetName = "Entities"

// fixedColumns are the head and tail column names; a stored attribute with
// one of these names already renders through its fixed column.
var fixedColumns = map[string]struct{}{
	"name":              {},
	"unique_identifier": {},
	"source_tasks":      {},
	"confidence_score":  {},
	"updated_at":        {},
}

// Columns returns the header row for a set of entities: name and
// unique_identifier first, the sorted union of attribute names, then
// source_tasks, confidence_score and updated_at.
func Columns(entities []*ent.AggregatedEntity) []string {
	attrSet := make(map[string]struct{})
	for _, e := range entities {
		for attr := range e.ConsolidatedAttributes {
			if _, fixed := fixedColumns[attr]; fixed {
				continue
			}
			attrSet[attr] = struct{}{}
		}
	}
	attrs := make([]string, 0, len(attrSet))
	for attr := range attrSet {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	columns := make([]string, 0, len(attrs)+5)
	columns = append(columns, "name", "unique_identifier")
	columns = append(columns, attrs...)
	columns = append(columns, "source_tasks", "confidence_score", "updated_at")
	return columns
}

// row renders one entity against the header. Attribute columns sit between
// the two fixed head columns and the three fixed tail columns.
func row(e *ent.AggregatedEntity, columns []string) []string {
	out := make([]string, len(columns))
	out[0] = e.Name
	out[1] = e.UniqueIdentifier
	for i, col := range columns[2 : len(columns)-3] {
		out[2+i] = attributeString(e.ConsolidatedAttributes[col])
	}
	n := len(columns)
	out[n-3] = joinTasks(e.SourceTasks)
	out[n-2] = strconv.FormatFloat(e.ConfidenceScore, 'f', -1, 64)
	out[n-1] = e.UpdatedAt.UTC().Format(time.RFC3339)
	return out
}

func joinTasks(tasks []string) string {
	var b bytes.Buffer
	for i, t := range tasks {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(t)
	}
	return b.String()
}

func attributeString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CSV renders the entities as an RFC 4180 CSV file with a header row and one
// row per entity, preserving input order.
func CSV(entities []*ent.AggregatedEntity) ([]byte, error) {
	columns := Columns(entities)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entities {
		if err := w.Write(row(e, columns)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the same table as a single-sheet Excel workbook.
func XLSX(entities []*ent.AggregatedEntity) ([]byte, error) {
	columns := Columns(entities)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &cells)
	}

	if err := writeRow(1, columns); err != nil {
		return nil, fmt.Errorf("failed to write XLSX header: %w", err)
	}
	for i, e := range entities {
		if err := writeRow(i+2, row(e, columns)); err != nil {
			return nil, fmt.Errorf("failed to write XLSX row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
