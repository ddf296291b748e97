// Package metrics defines the measurements collected during one
// generation run, embedded in reports and API responses.
package metrics

import "time"

// RunMetadata captures high-level context for a generation run.
type RunMetadata struct {
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	Duration       time.Duration `json:"duration"`
	ColumnCount    int           `json:"column_count"`
	SourceRowCount int           `json:"source_row_count"`
	TargetRowCount int           `json:"target_row_count"`
	RowCountDelta  int           `json:"row_count_delta"`
}

// StageMetrics holds the mutation count for one perturbation stage.
type StageMetrics struct {
	Name      string `json:"name"`
	Mutations int    `json:"mutations"`
}

// Reconciliation records which table was trimmed to reach the configured
// row counts.
type Reconciliation struct {
	TrimmedTable string `json:"trimmed_table,omitempty"`
	RowsRemoved  int    `json:"rows_removed"`
}

// RunMetrics is the full measurement set for one run.
type RunMetrics struct {
	Metadata       RunMetadata    `json:"metadata"`
	Stages         []StageMetrics `json:"stages,omitempty"`
	Reconciliation Reconciliation `json:"reconciliation"`
}
