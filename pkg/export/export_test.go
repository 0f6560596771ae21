package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trilogy-group/nexus-agents/ent"
)

func testEntities() []*ent.AggregatedEntity {
	updated := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	return []*ent.AggregatedEntity{
		{
			Name:             "Hillcrest Academy",
			UniqueIdentifier: "nces-001",
			ConsolidatedAttributes: map[string]interface{}{
				"address":    "12 Oak St, Fresno",
				"website":    "https://hillcrest.example",
				"enrollment": float64(430),
			},
			ConfidenceScore: 0.9,
			SourceTasks:     []string{"task-a", "task-b"},
			UpdatedAt:       updated,
		},
		{
			Name: `Bayview "Prep"`,
			ConsolidatedAttributes: map[string]interface{}{
				"tuition": "24,000",
			},
			ConfidenceScore: 0.55,
			SourceTasks:     []string{"task-a"},
			UpdatedAt:       updated,
		},
	}
}

func TestColumns(t *testing.T) {
	columns := Columns(testEntities())
	assert.Equal(t, []string{
		"name", "unique_identifier",
		"address", "enrollment", "tuition", "website",
		"source_tasks", "confidence_score", "updated_at",
	}, columns)
}

func TestCSV(t *testing.T) {
	data, err := CSV(testEntities())
	require.NoError(t, err)

	// LF endings, no CRLF.
	assert.NotContains(t, string(data), "\r\n")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "name", records[0][0])
	assert.Equal(t, "Hillcrest Academy", records[1][0])
	assert.Equal(t, "nces-001", records[1][1])
	assert.Equal(t, "430", records[1][3])
	assert.Equal(t, "task-a;task-b", records[1][6])
	assert.Equal(t, "0.9", records[1][7])
	assert.Equal(t, "2026-08-25T12:00:00Z", records[1][8])

	// Missing attributes render empty, quoted values survive round-trip.
	assert.Equal(t, `Bayview "Prep"`, records[2][0])
	assert.Equal(t, "", records[2][1])
	assert.Equal(t, "", records[2][2])
	assert.Equal(t, "24,000", records[2][4])
}

func TestColumns_FixedNamesNotDuplicated(t *testing.T) {
	// Extraction may store a "name" attribute when the caller requests it;
	// the fixed head column already carries it.
	entities := []*ent.AggregatedEntity{{
		Name: "Hillcrest Academy",
		ConsolidatedAttributes: map[string]interface{}{
			"name":       "Hillcrest Academy",
			"address":    "12 Oak St, Fresno",
			"updated_at": "2026-08-25",
		},
	}}
	assert.Equal(t, []string{
		"name", "unique_identifier",
		"address",
		"source_tasks", "confidence_score", "updated_at",
	}, Columns(entities))
}

func TestCSV_Empty(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "name,unique_identifier,source_tasks,confidence_score,updated_at\n",
		string(data))
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(testEntities())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "Hillcrest Academy", rows[1][0])
	assert.True(t, strings.HasPrefix(rows[1][8], "2026-08-25"))
}
