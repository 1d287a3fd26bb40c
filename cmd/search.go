package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/bggxml/bgg"
	"github.com/s0up4200/bggxml/output"
)

var (
	searchType  string
	searchExact bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search games by name",
	Long: `Search BoardGameGeek by name. Results include alternate names, so the
same game can appear more than once.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "", "restrict to a thing type, e.g. boardgame or boardgameexpansion")
	searchCmd.Flags().BoolVarP(&searchExact, "exact", "e", false, "only return exact name matches")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	results, err := client.Search(cmd.Context(), query, bgg.SearchOptions{
		Type:  searchType,
		Exact: searchExact,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	logger.Debug().Str("query", query).Int("results", len(results)).Msg("Search complete")

	fmt.Println(output.NewConsoleFormatter().FormatSearchResults(results))
	return nil
}
