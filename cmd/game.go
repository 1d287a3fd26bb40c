package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/bggxml/bgg"
	"github.com/s0up4200/bggxml/output"
)

var (
	gameStats   bool
	gameBatched bool
)

// gameCmd represents the game command
var gameCmd = &cobra.Command{
	Use:   "game <id>...",
	Short: "Look up one or more games by id",
	Long: `Fetch board games by their BoardGameGeek id and print their details.

More than 20 ids need --batched, which splits them into concurrent requests.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runGame,
}

func init() {
	gameCmd.Flags().BoolVarP(&gameStats, "stats", "s", false, "include rating statistics")
	gameCmd.Flags().BoolVarP(&gameBatched, "batched", "b", false, "split the ids into batches of 20")
}

func runGame(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var games []bgg.Game
	switch {
	case gameBatched:
		games, err = client.FetchGamesByIDBatched(ctx, ids, gameStats)
	case len(ids) == 1:
		var game bgg.Game
		game, err = client.FetchGameByID(ctx, ids[0], gameStats)
		games = []bgg.Game{game}
	default:
		games, err = client.FetchGamesByID(ctx, ids, gameStats)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch games: %w", err)
	}

	logger.Debug().Int("requested", len(ids)).Int("returned", len(games)).Msg("Games fetched")

	fmt.Print(output.NewConsoleFormatter().FormatGames(games))
	return nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid game id '%s': must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
