// Package report renders the outcome of a generation run as JSON or HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/driftdata/driftgen/metrics"
)

// -----------------------------
// Report Types
// -----------------------------

// GenerationReport describes one finished run: what was generated and
// which perturbations were applied to the target table.
type GenerationReport struct {
	GeneratedAt     time.Time          `json:"generated_at"`
	Columns         []string           `json:"columns"`
	SourceHeader    []string           `json:"source_header"`
	TargetHeader    []string           `json:"target_header"`
	Metrics         metrics.RunMetrics `json:"metrics"`
	PerturbedTarget bool               `json:"perturbed_target"`
}

// ReportGenerator defines the methods for generating reports.
type ReportGenerator interface {
	GenerateReport(run GenerationReport) ([]byte, error)
	SaveReportToFile(run GenerationReport, filePath string) error
}

// -----------------------------
// JSON Report Generator
// -----------------------------

// JSONReportGenerator generates JSON reports.
type JSONReportGenerator struct{}

// GenerateReport serializes the GenerationReport to JSON.
func (j *JSONReportGenerator) GenerateReport(run GenerationReport) ([]byte, error) {
	return json.MarshalIndent(run, "", "  ")
}

// SaveReportToFile saves the JSON report to a file.
func (j *JSONReportGenerator) SaveReportToFile(run GenerationReport, filePath string) error {
	data, err := j.GenerateReport(run)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// ReportFromFilePath loads a previously saved report.
func (j *JSONReportGenerator) ReportFromFilePath(path string) (GenerationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GenerationReport{}, err
	}

	var run GenerationReport
	if err := json.Unmarshal(data, &run); err != nil {
		return GenerationReport{}, err
	}
	return run, nil
}

// -----------------------------
// HTML Report Generator
// -----------------------------

// HTMLReportGenerator generates HTML reports.
type HTMLReportGenerator struct{}

// HTML template for the report.
const htmlTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generation Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f4f4f4; }
    </style>
</head>
<body>
    <h1>Generation Report</h1>
    <p><strong>Generated:</strong> {{.GeneratedAt}}</p>
    <p><strong>Columns:</strong> {{.Metrics.Metadata.ColumnCount}}</p>
    <p><strong>Duration:</strong> {{.Metrics.Metadata.Duration}}</p>

    <h2>Row Counts</h2>
    <table>
        <tr>
            <th>Source Rows</th>
            <th>Target Rows</th>
            <th>Configured Delta</th>
            <th>Trimmed Table</th>
            <th>Rows Removed</th>
        </tr>
        <tr>
            <td>{{.Metrics.Metadata.SourceRowCount}}</td>
            <td>{{.Metrics.Metadata.TargetRowCount}}</td>
            <td>{{.Metrics.Metadata.RowCountDelta}}</td>
            <td>{{if .Metrics.Reconciliation.TrimmedTable}}{{.Metrics.Reconciliation.TrimmedTable}}{{else}}none{{end}}</td>
            <td>{{.Metrics.Reconciliation.RowsRemoved}}</td>
        </tr>
    </table>

    <h2>Perturbation Stages</h2>
    <table>
        <tr>
            <th>Stage</th>
            <th>Mutations</th>
        </tr>
        {{range .Metrics.Stages}}
        <tr>
            <td>{{.Name}}</td>
            <td>{{.Mutations}}</td>
        </tr>
        {{else}}
        <tr><td colspan="2">No perturbations applied</td></tr>
        {{end}}
    </table>

    <h2>Headers</h2>
    <table>
        <tr>
            <th>Source</th>
            <th>Target</th>
        </tr>
        <tr>
            <td>{{range .SourceHeader}}{{.}} {{end}}</td>
            <td>{{range .TargetHeader}}{{.}} {{end}}</td>
        </tr>
    </table>
</body>
</html>
`

// GenerateReport renders the GenerationReport as HTML.
func (h *HTMLReportGenerator) GenerateReport(run GenerationReport) ([]byte, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, run); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveReportToFile saves the HTML report to a file.
func (h *HTMLReportGenerator) SaveReportToFile(run GenerationReport, filePath string) error {
	data, err := h.GenerateReport(run)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
