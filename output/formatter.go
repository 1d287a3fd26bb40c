package output

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/s0up4200/bggxml/bgg"
)

// Sort orders accepted by FormatOptions.
const (
	SortNone   = ""
	SortName   = "name"
	SortRank   = "rank"
	SortRating = "rating"
	SortPlays  = "plays"
)

// SortOrders lists the valid sort orders for flag validation.
var SortOrders = []string{SortName, SortRank, SortRating, SortPlays}

// FormatOptions controls how a collection is rendered
type FormatOptions struct {
	ShowStats bool
	Sort      string
}

// ConsoleFormatter provides console output formatting for BGG records
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatGames formats games as a tree, one branch per game
func (f *ConsoleFormatter) FormatGames(games []bgg.Game) string {
	if len(games) == 0 {
		return "No games found"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nGame")
	if len(games) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(games))

	for i, game := range games {
		isLast := i == len(games)-1
		f.formatGame(&sb, game, isLast)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatGame formats a single game
func (f *ConsoleFormatter) FormatGame(game bgg.Game) string {
	return f.FormatGames([]bgg.Game{game})
}

func (f *ConsoleFormatter) formatGame(sb *strings.Builder, game bgg.Game, isLast bool) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── %s (%d)\n", prefix, game.Name, game.YearPublished)
	fmt.Fprintf(sb, "%sID: %d | Type: %s\n", indent, game.ObjectID, game.Type)
	fmt.Fprintf(sb, "%sPlayers: %s | Time: %s | Age: %d+\n",
		indent,
		rangeString(game.MinPlayers, game.MaxPlayers),
		rangeString(game.MinPlaytime, game.MaxPlaytime)+" min",
		game.MinAge)

	// Polls
	if best, ok := game.SuggestedPlayers.BestPlayerCount(); ok {
		fmt.Fprintf(sb, "%sBest with: %s (%d votes)\n", indent, best, game.SuggestedPlayers.TotalVotes())
	}
	if level, ok := dominantResult(game.LanguageDependence.Entries); ok {
		fmt.Fprintf(sb, "%sLanguage: %s\n", indent, level.Value)
	}

	// Links grouped by type, in order of first appearance
	var linkTypes []string
	grouped := make(map[string][]string)
	for _, l := range game.Links {
		if l.IsInbound() {
			continue
		}
		if _, seen := grouped[l.Type]; !seen {
			linkTypes = append(linkTypes, l.Type)
		}
		grouped[l.Type] = append(grouped[l.Type], l.Value)
	}
	for _, t := range linkTypes {
		fmt.Fprintf(sb, "%s%s: %s\n", indent, linkLabel(t), strings.Join(grouped[t], ", "))
	}

	// Statistics
	if s := game.Stats; s != nil {
		fmt.Fprintf(sb, "%sRating: %.2f (Bayes %.2f, %d ratings) | Weight: %.2f\n",
			indent, s.Average, s.BayesAverage, s.UsersRated, s.AverageWeight)

		var ranks []string
		for _, r := range s.Ranks {
			if r.Ranked() {
				ranks = append(ranks, fmt.Sprintf("%s #%d", r.FriendlyName, r.Value))
			} else {
				ranks = append(ranks, r.FriendlyName+" not ranked")
			}
		}
		if len(ranks) > 0 {
			fmt.Fprintf(sb, "%sRanks: %s\n", indent, strings.Join(ranks, " | "))
		}
	}

	if u := game.ImageURL(); u != nil {
		fmt.Fprintf(sb, "%sImage: %s\n", indent, u)
	}
}

// FormatCollection formats collection entries as a table
func (f *ConsoleFormatter) FormatCollection(entries []bgg.CollectionEntry, options FormatOptions) string {
	if len(entries) == 0 {
		return "No collection entries found"
	}

	entries = sortEntries(entries, options.Sort)

	t := table.NewWriter()
	header := table.Row{"Name", "Year", "Status", "Plays"}
	if options.ShowStats {
		header = append(header, "Players", "Rating", "Average", "Rank")
	}
	t.AppendHeader(header)

	for _, e := range entries {
		row := table.Row{e.Name, optInt(e.YearPublished), statusString(e.Status), optInt(e.NumPlays)}
		if options.ShowStats {
			row = append(row, statsColumns(e.Stats)...)
		}
		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d entries", len(entries))})
	t.SetStyle(table.StyleRounded)
	return t.Render()
}

// FormatSearchResults formats search results as a table
func (f *ConsoleFormatter) FormatSearchResults(results []bgg.SearchResult) string {
	if len(results) == 0 {
		return "No results found"
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Name", "Year", "Type"})
	for _, r := range results {
		name := r.Name
		if r.NameType != "primary" {
			name += " (" + r.NameType + ")"
		}
		t.AppendRow(table.Row{r.ObjectID, name, optInt(r.YearPublished), r.Type})
	}
	t.SetStyle(table.StyleRounded)
	return t.Render()
}

func sortEntries(entries []bgg.CollectionEntry, order string) []bgg.CollectionEntry {
	if order == SortNone {
		return entries
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b bgg.CollectionEntry) int {
		switch order {
		case SortRank:
			// unranked entries last
			ra, rb := entryRank(a), entryRank(b)
			if (ra == 0) != (rb == 0) {
				return cmp.Compare(rb, ra)
			}
			return cmp.Compare(ra, rb)
		case SortRating:
			return cmp.Compare(userRating(b), userRating(a))
		case SortPlays:
			return cmp.Compare(deref(b.NumPlays), deref(a.NumPlays))
		default:
			return strings.Compare(strings.ToLower(a.SortName()), strings.ToLower(b.SortName()))
		}
	})
	return sorted
}

func entryRank(e bgg.CollectionEntry) int {
	if e.Stats == nil {
		return 0
	}
	return bgg.OverallRank(e.Stats.Rating.Ranks)
}

func userRating(e bgg.CollectionEntry) float64 {
	if e.Stats == nil || e.Stats.Rating.UserRating == nil {
		return -1
	}
	return *e.Stats.Rating.UserRating
}

func statsColumns(s *bgg.CollectionStats) table.Row {
	if s == nil {
		return table.Row{"-", "-", "-", "-"}
	}

	players := "-"
	if s.MinPlayers != nil && s.MaxPlayers != nil {
		players = rangeString(*s.MinPlayers, *s.MaxPlayers)
	}

	rating := "-"
	if s.Rating.UserRating != nil {
		rating = strconv.FormatFloat(*s.Rating.UserRating, 'f', -1, 64)
	}

	rank := "-"
	if r := bgg.OverallRank(s.Rating.Ranks); r > 0 {
		rank = strconv.Itoa(r)
	}

	return table.Row{players, rating, fmt.Sprintf("%.2f", s.Rating.Average), rank}
}

func statusString(s bgg.CollectionStatus) string {
	var parts []string
	flags := []struct {
		set   bool
		label string
	}{
		{s.Own, "Owned"},
		{s.PrevOwned, "Prev. owned"},
		{s.ForTrade, "For trade"},
		{s.Want, "Want in trade"},
		{s.WantToPlay, "Want to play"},
		{s.WantToBuy, "Want to buy"},
		{s.PreOrdered, "Preordered"},
	}
	for _, f := range flags {
		if f.set {
			parts = append(parts, f.label)
		}
	}
	if s.Wishlist {
		if s.WishlistPriority != nil {
			parts = append(parts, fmt.Sprintf("Wishlist (%d)", *s.WishlistPriority))
		} else {
			parts = append(parts, "Wishlist")
		}
	}
	return strings.Join(parts, ", ")
}

// dominantResult returns the result with the most votes, if any were cast.
func dominantResult(results []bgg.PollResult) (bgg.PollResult, bool) {
	var best bgg.PollResult
	for _, r := range results {
		if r.NumVotes > best.NumVotes {
			best = r
		}
	}
	return best, best.NumVotes > 0
}

func linkLabel(linkType string) string {
	label := strings.TrimPrefix(linkType, "boardgame")
	if label == "" {
		return linkType
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func rangeString(lo, hi int) string {
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
