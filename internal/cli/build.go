package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calderaviz/caldera/pkg/config"
	pkgio "github.com/calderaviz/caldera/pkg/io"
	"github.com/calderaviz/caldera/pkg/volcano"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	configPath string // chart definition file (TOML)
	dataPath   string // CSV data file
	output     string // output file path (stdout if empty)
	noHeader   bool   // treat the first CSV record as data
}

// newBuildCmd creates the build command.
// It loads a chart definition, fills the table from CSV data, registers the
// declared renderables in a fresh Volcano, and writes the serialized JSON.
func newBuildCmd() *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build renderables from a chart definition and CSV data",
		Long: `Build data tables and renderables, then export their serialized form.

The chart definition declares the table's columns and the charts/dashboards
built on it; the CSV file supplies the rows.

Examples:
  caldera build -c charts.toml -d data.csv            # JSON to stdout
  caldera build -c charts.toml -d data.csv -o out.json`,
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "chart definition file (TOML)")
	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "CSV data file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "treat the first CSV record as data")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// runBuild executes the build pipeline: definition → table → rows →
// registry → export.
func runBuild(ctx context.Context, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	def, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded definition: %d columns, %d charts, %d dashboards",
		len(def.Columns), len(def.Charts), len(def.Dashboards))

	table, err := def.BuildTable()
	if err != nil {
		return err
	}
	if err := pkgio.ImportCSV(opts.dataPath, table, !opts.noHeader); err != nil {
		return err
	}
	logger.Debugf("Imported %d rows from %s", table.RowCount(), opts.dataPath)

	renderables, err := def.BuildRenderables(table)
	if err != nil {
		return err
	}

	registry := volcano.New()
	for _, r := range renderables {
		registry.Store(r)
	}

	if opts.output == "" {
		if err := pkgio.WriteJSON(registry, os.Stdout); err != nil {
			return err
		}
	} else {
		if err := pkgio.ExportJSON(registry, opts.output); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, StyleSuccess.Render(fmt.Sprintf("✓ wrote %s", opts.output)))
	}

	prog.done(fmt.Sprintf("Built %d renderables over %d rows", registry.Count(), table.RowCount()))
	return nil
}
