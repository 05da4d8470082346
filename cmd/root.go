package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fbrfetch/fbrfetch/config"
	"github.com/fbrfetch/fbrfetch/fbrapi"
	"github.com/fbrfetch/fbrfetch/filter"
	"github.com/fbrfetch/fbrfetch/table"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fbrapi.Client

	// Command flags
	filterExpr  string
	countryCode string
	leagueID    int
	previewRows int

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fbrfetch",
	Short: "A CLI client for the FBR soccer statistics API",
	Long: `fbrfetch is a small CLI for fbrapi.com. It generates short-lived API keys,
fetches leagues and league seasons, and prints the flattened results as
a preview table.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata for the version command.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().IntVarP(&previewRows, "rows", "n", 0, "number of preview rows to print (overrides config)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override preview rows from command line if specified
	if cmd.Flags().Changed("rows") {
		cfg.Output.PreviewRows = previewRows
	}

	// Create FBR client
	opts := []fbrapi.Option{
		fbrapi.WithTimeout(cfg.FBR.Timeout),
		fbrapi.WithMinInterval(cfg.FBR.MinInterval),
		fbrapi.WithMaxAttempts(cfg.FBR.MaxAttempts),
	}
	if cfg.FBR.APIKey != "" {
		opts = append(opts, fbrapi.WithAPIKey(cfg.FBR.APIKey))
	}

	client, err = fbrapi.NewClient(cfg.FBR.BaseURL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FBR client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only make sense on a real terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// applyFilter narrows rows with the --filter expression, if one was given.
func applyFilter(rows []fbrapi.Row) ([]fbrapi.Row, error) {
	if filterExpr == "" {
		return rows, nil
	}

	f, err := filter.Compile(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return f.Apply(rows)
}

// printPreview renders the head of the row table plus a count of what was
// left out.
func printPreview(rows []fbrapi.Row) {
	if len(rows) == 0 {
		fmt.Println("No rows matched.")
		return
	}

	t := table.New(rows)
	fmt.Printf("\n%d row(s):\n\n", t.Len())
	fmt.Print(t.Head(cfg.Output.PreviewRows).Render())
	if hidden := t.Len() - cfg.Output.PreviewRows; hidden > 0 {
		fmt.Printf("(+%d more rows)\n", hidden)
	}
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the FBR API",
	Long:  `Test the connection to the FBR API by requesting a fresh key from the key-issuance endpoint.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to FBR at %s...\n", cfg.FBR.BaseURL)

	if _, err := client.GenerateKey(context.Background()); err != nil {
		return fmt.Errorf("failed to generate API key: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Request timeout: %s\n", cfg.FBR.Timeout)
	fmt.Printf("- Minimum request interval: %s\n", cfg.FBR.MinInterval)
	fmt.Printf("- Auth retry attempts: %d\n", cfg.FBR.MaxAttempts)

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fbrfetch %s (built %s)\n", appVersion, appBuildTime)
	},
}
