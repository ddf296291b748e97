package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/driftdata/driftgen/config"
	"github.com/driftdata/driftgen/logger"
	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/pipeline"
	"github.com/driftdata/driftgen/pkg/writers"
	"github.com/driftdata/driftgen/report"
)

// GenerateOptions represents the options for the generate command.
type GenerateOptions struct {
	ConfigPath string
	Format     string
	Seed       int64
}

// newGenerateCommand creates a new generate command.
func newGenerateCommand() *cobra.Command {
	options := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a source/target dataset pair",
		Long: `The generate command reads a YAML configuration holding the column
specification and the generation answers, builds the source table, derives
the perturbed target table, and writes both to the configured paths.

Use --seed for a reproducible run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(options)
		},
	}

	cmd.Flags().StringVarP(&options.ConfigPath, "config", "c", "driftgen.yaml", "Path to the YAML configuration file")
	cmd.Flags().StringVarP(&options.Format, "format", "f", "", "Output format override (csv, json, arrow, parquet)")
	cmd.Flags().Int64Var(&options.Seed, "seed", 0, "Random seed (0 uses the current time)")

	return cmd
}

// runGenerate executes the generate command with the given options.
func runGenerate(options *GenerateOptions) error {
	log := logger.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig(options.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := cfg.Output.Format
	if options.Format != "" {
		format = options.Format
	}
	if format == "" {
		format = "csv"
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Generating:\n  Columns: %d\n  Source rows: %d\n  Target rows: %d\n",
		len(cfg.Columns), cfg.Generation.SourceRowCount, cfg.Generation.TargetRowCount())

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " generating dataset pair..."
	s.Start()

	result, err := pipeline.Run(cfg.Columns, cfg.Generation, pipeline.Options{
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: log,
	})
	s.Stop()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := writeTable(result.Source, format, cfg.Output.SourcePath); err != nil {
		return fmt.Errorf("failed to write source table: %w", err)
	}
	if err := writeTable(result.Target, format, cfg.Output.TargetPath); err != nil {
		return fmt.Errorf("failed to write target table: %w", err)
	}

	if cfg.Output.ReportPath != "" {
		if err := writeReport(result, cfg.Output.ReportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	fmt.Printf("Source written to %s (%d rows)\n", cfg.Output.SourcePath, result.Source.DataRowCount())
	fmt.Printf("Target written to %s (%d rows)\n", cfg.Output.TargetPath, result.Target.DataRowCount())
	return nil
}

func writeTable(tbl core.Table, format, path string) error {
	writer, err := writers.DefaultFactory.Create(core.WriterConfig{Type: format, Path: path})
	if err != nil {
		return err
	}
	if err := writer.Write(tbl); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

// writeReport picks the generator by file extension: .html gets the HTML
// rendering, everything else JSON.
func writeReport(result *pipeline.Result, path string) error {
	run := report.GenerationReport{
		GeneratedAt:     time.Now().UTC(),
		Columns:         result.Source.Header(),
		SourceHeader:    result.Source.Header(),
		TargetHeader:    result.Target.Header(),
		Metrics:         result.Metrics,
		PerturbedTarget: len(result.Metrics.Stages) > 0,
	}

	var generator report.ReportGenerator
	if strings.EqualFold(filepath.Ext(path), ".html") {
		generator = &report.HTMLReportGenerator{}
	} else {
		generator = &report.JSONReportGenerator{}
	}
	return generator.SaveReportToFile(run, path)
}
