package cmd

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/bggxml/bgg"
	"github.com/s0up4200/bggxml/filter"
	"github.com/s0up4200/bggxml/output"
)

var (
	collectionBrief   bool
	collectionStats   bool
	collectionTimeout time.Duration
	filterExpr        string
	preset            string
	sortOrder         string
)

// collectionCmd represents the collection command
var collectionCmd = &cobra.Command{
	Use:   "collection <username>",
	Short: "List a user's collection",
	Long: `Fetch a user's collection. BoardGameGeek queues collection requests, so
the command keeps retrying until the collection is ready or --timeout expires.

Entries can be narrowed down with an expression:

  bggxml collection alice --filter 'Own && Plays == 0'
  bggxml collection alice --filter 'Wishlist && WishlistPriority <= 2'
  bggxml collection alice --filter 'playsWith(2) && Rank > 0 && Rank <= 100'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCollection,
}

func init() {
	collectionCmd.Flags().BoolVar(&collectionBrief, "brief", false, "request an abbreviated collection")
	collectionCmd.Flags().BoolVarP(&collectionStats, "stats", "s", false, "include rating statistics")
	collectionCmd.Flags().DurationVarP(&collectionTimeout, "timeout", "t", 0, "how long to wait for a queued collection")
	collectionCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	collectionCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	collectionCmd.Flags().StringVar(&sortOrder, "sort", "", "sort by "+strings.Join(output.SortOrders, ", "))
}

func runCollection(cmd *cobra.Command, args []string) error {
	if sortOrder != "" && !slices.Contains(output.SortOrders, sortOrder) {
		return fmt.Errorf("invalid sort order: %s (must be one of %s)", sortOrder, strings.Join(output.SortOrders, ", "))
	}

	f, err := collectionFilter()
	if err != nil {
		return err
	}

	opts := bgg.CollectionOptions{
		Brief:   cfg.Collection.Brief,
		Stats:   cfg.Collection.Stats,
		Timeout: cfg.Collection.Timeout,
	}
	if cmd.Flags().Changed("brief") {
		opts.Brief = collectionBrief
	}
	if cmd.Flags().Changed("stats") {
		opts.Stats = collectionStats
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = collectionTimeout
	}

	username := args[0]
	logger.Info().
		Str("username", username).
		Dur("timeout", opts.Timeout).
		Msg("Fetching collection")

	entries, err := client.FetchUserCollection(cmd.Context(), username, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch collection for %s: %w", username, err)
	}

	if f != nil {
		total := len(entries)
		entries = f.Apply(entries)
		logger.Debug().
			Str("filter", f.Expression()).
			Int("total", total).
			Int("matched", len(entries)).
			Msg("Filter applied")
	}

	fmt.Println(output.NewConsoleFormatter().FormatCollection(entries, output.FormatOptions{
		ShowStats: opts.Stats,
		Sort:      sortOrder,
	}))
	return nil
}

// collectionFilter compiles the --filter expression or the named preset.
// It returns nil when neither is set.
func collectionFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Filter.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}
	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}
