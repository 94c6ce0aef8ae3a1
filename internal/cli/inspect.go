package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calderaviz/caldera/pkg/config"
	pkgio "github.com/calderaviz/caldera/pkg/io"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	configPath  string
	dataPath    string
	maxRows     int
	noHeader    bool
	interactive bool
}

// newInspectCmd creates the inspect command.
// It builds the table the same way build does, but renders a terminal
// preview instead of exporting JSON.
func newInspectCmd() *cobra.Command {
	opts := inspectOpts{maxRows: 20}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Preview a data table in the terminal",
		Long: `Preview the typed data table a chart definition and CSV file produce.

By default the first rows are printed as a static table; --interactive opens
a pager over all rows.

Examples:
  caldera inspect -c charts.toml -d data.csv
  caldera inspect -c charts.toml -d data.csv --interactive`,
		RunE: func(c *cobra.Command, args []string) error {
			return runInspect(c.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "chart definition file (TOML)")
	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "CSV data file")
	cmd.Flags().IntVar(&opts.maxRows, "max-rows", opts.maxRows, "rows to show in static preview")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "treat the first CSV record as data")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse rows interactively")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runInspect(ctx context.Context, opts *inspectOpts) error {
	logger := loggerFromContext(ctx)

	def, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	table, err := def.BuildTable()
	if err != nil {
		return err
	}
	if err := pkgio.ImportCSV(opts.dataPath, table, !opts.noHeader); err != nil {
		return err
	}
	logger.Debugf("Imported %d rows, %d columns", table.RowCount(), table.ColumnCount())

	title := fmt.Sprintf("%s — %d rows × %d columns", opts.dataPath, table.RowCount(), table.ColumnCount())

	if opts.interactive {
		return runRowPager(title, table)
	}

	fmt.Fprintln(os.Stdout, StyleTitle.Render(title))
	fmt.Fprint(os.Stdout, renderTable(table, opts.maxRows))
	return nil
}
