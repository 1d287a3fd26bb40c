package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/bggxml/bgg"
	"github.com/s0up4200/bggxml/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *bgg.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bggxml",
	Short: "Query the BoardGameGeek XML API from the command line",
	Long: `bggxml looks up board games, user collections and search results on
BoardGameGeek through its XML API v2.

Collection requests are queued by BoardGameGeek and retried until they are
ready or the collection timeout expires.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the running request.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.bggxml/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger = setupLogger(cfg.Logging)

	client = bgg.NewClient(logger, clientOptions(cfg)...)

	logger.Debug().
		Str("base_url", cfg.BGG.BaseURL).
		Dur("timeout", cfg.BGG.Timeout).
		Msg("Client configured")

	return nil
}

func clientOptions(cfg *config.Config) []bgg.Option {
	return []bgg.Option{
		bgg.WithBaseURL(cfg.BGG.BaseURL),
		bgg.WithTimeout(cfg.BGG.Timeout),
		bgg.WithUserAgent(cfg.BGG.UserAgent),
		bgg.WithRetryDelay(cfg.BGG.RetryDelay),
		bgg.WithBatchConcurrency(cfg.Batch.Concurrency),
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// No colour when stderr is redirected
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
