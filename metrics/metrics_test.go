package metrics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMetricsJSON(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := RunMetrics{
		Metadata: RunMetadata{
			StartTime:      start,
			EndTime:        start.Add(2 * time.Second),
			Duration:       2 * time.Second,
			ColumnCount:    5,
			SourceRowCount: 100,
			TargetRowCount: 85,
			RowCountDelta:  -15,
		},
		Stages: []StageMetrics{
			{Name: "rename", Mutations: 2},
		},
		Reconciliation: Reconciliation{TrimmedTable: "target", RowsRemoved: 15},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded RunMetrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)
}

func TestReconciliationOmitsEmptyTable(t *testing.T) {
	data, err := json.Marshal(Reconciliation{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "trimmed_table")
}
