package filter

import (
	"strings"

	"github.com/s0up4200/bggxml/bgg"
)

// environment exposes an entry to expressions. Optional values read as zero
// when absent.
func (f *Filter) environment(entry bgg.CollectionEntry) map[string]any {
	env := make(map[string]any, 40)
	addHelperFunctions(env)

	status := entry.Status
	env["Entry"] = entry
	env["Name"] = entry.Name
	env["SortName"] = entry.SortName()
	env["Year"] = deref(entry.YearPublished)
	env["Plays"] = deref(entry.NumPlays)

	env["Own"] = status.Own
	env["PrevOwned"] = status.PrevOwned
	env["ForTrade"] = status.ForTrade
	env["Want"] = status.Want
	env["WantToPlay"] = status.WantToPlay
	env["WantToBuy"] = status.WantToBuy
	env["Wishlist"] = status.Wishlist
	env["PreOrdered"] = status.PreOrdered
	env["WishlistPriority"] = deref(status.WishlistPriority)

	var stats bgg.CollectionStats
	if entry.Stats != nil {
		stats = *entry.Stats
	}
	env["UserRating"] = deref(stats.Rating.UserRating)
	env["Average"] = stats.Rating.Average
	env["BayesAverage"] = stats.Rating.BayesAverage
	env["NumOwned"] = stats.NumOwned
	env["MinPlayers"] = deref(stats.MinPlayers)
	env["MaxPlayers"] = deref(stats.MaxPlayers)
	env["PlayingTime"] = deref(stats.PlayingTime)
	env["Rank"] = bgg.OverallRank(stats.Rating.Ranks)

	env["hasStats"] = func() bool {
		return entry.Stats != nil
	}
	env["playsWith"] = func(players int) bool {
		if stats.MinPlayers == nil || stats.MaxPlayers == nil {
			return false
		}
		return *stats.MinPlayers <= players && players <= *stats.MaxPlayers
	}
	env["daysSinceModified"] = func() int {
		modified, err := status.LastModifiedTime()
		if err != nil {
			return -1
		}
		return int(f.now().Sub(modified).Hours() / 24)
	}

	return env
}

// addHelperFunctions adds the string helpers shared by all expressions
func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
