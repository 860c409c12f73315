package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngmaloney/jiai-terminal/internal/report"
)

var reportJSON bool

// reportCmd prints a single report and exits
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a one-shot report for a place and hour",
	Long: `Resolves the place, samples conditions and prints the star rating and advice.

Example:
  jiai-terminal report --place 観音崎 --date 2024-06-01 --hour 12 --simulate`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	q, err := requestQuery(cfg, time.Now())
	if err != nil {
		return err
	}

	r, err := a.builder.Build(ctx, q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	fmt.Fprintln(out, report.Render(r))
	return nil
}
