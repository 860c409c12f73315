package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/config"
	"github.com/ngmaloney/jiai-terminal/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	dbPath     string

	// Request flags shared by the dashboard and report
	place    string
	date     string
	hour     int
	style    string
	simulate bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the dashboard
var rootCmd = &cobra.Command{
	Use:   "jiai-terminal",
	Short: "時合 (bite window) dashboard for coastal fishing spots",
	Long: `jiai-terminal samples tide, pressure, wind and wave height for a fishing
spot and rates the bite likelihood from one to five stars, with advice text
for the chosen fishing style.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}

		// The dashboard owns the terminal, so it logs to a file
		opts := logging.Options{Level: cfg.Logging.Level, Verbose: verbose}
		if cmd == cmd.Root() {
			opts.File = cfg.Logging.File
		}
		logger, err = logging.New(opts)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Spot registry database (overrides config and JIAI_DB)")

	addRequestFlags(rootCmd)
	addRequestFlags(reportCmd)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spotsCmd)
	rootCmd.AddCommand(configCmd)
}

// addRequestFlags registers the place/date/hour/style/simulate flags on cmd
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&place, "place", "p", "", "Spot name, place name or \"lat,lon\" (default from config)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&hour, "hour", -1, "Hour 0-23 (default current hour)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Fishing style, e.g. タイラバ or ジギング")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "Use the seeded simulation instead of Open-Meteo")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
