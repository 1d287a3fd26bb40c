package bgg

import (
	"net/url"
	"strings"
	"time"
)

// Poll names as they appear in the name attribute of a <poll> element.
const (
	PollSuggestedPlayers   = "suggested_numplayers"
	PollSuggestedPlayerAge = "suggested_playerage"
	PollLanguageDependence = "language_dependence"
)

// Game is a board game, expansion or other thing returned by the thing endpoint.
type Game struct {
	ObjectID      int
	Type          string
	Name          string
	SortIndex     int
	ImagePath     *string
	ThumbnailPath *string
	Description   string
	YearPublished int
	MinPlayers    int
	MaxPlayers    int
	PlayingTime   int
	MinPlaytime   int
	MaxPlaytime   int
	MinAge        int

	SuggestedPlayers   SuggestedPlayersPoll
	SuggestedPlayerAge SuggestedPlayerAgePoll
	LanguageDependence LanguageDependencePoll

	Links []Link
	// Stats is only present when the request asked for statistics
	Stats *Statistics
}

// SortName returns the name with its leading article skipped.
func (g Game) SortName() string {
	return sortName(g.Name, g.SortIndex)
}

// ImageURL returns the full URL of the game's image, or nil.
func (g Game) ImageURL() *url.URL {
	return imageURL(g.ImagePath)
}

// ThumbnailURL returns the full URL of the game's thumbnail, or nil.
func (g Game) ThumbnailURL() *url.URL {
	return imageURL(g.ThumbnailPath)
}

// LinksOfType returns the links with the given relation type, e.g.
// "boardgamedesigner", in document order.
func (g Game) LinksOfType(linkType string) []Link {
	var out []Link
	for _, l := range g.Links {
		if l.Type == linkType {
			out = append(out, l)
		}
	}
	return out
}

// Link relates a game to a category, mechanic, designer, publisher or another game.
type Link struct {
	Type  string
	ID    int
	Value string
	// Inbound is only set on back-references from expansions and implementations
	Inbound *bool
}

// IsInbound reports whether the link points back at this game.
func (l Link) IsInbound() bool {
	return l.Inbound != nil && *l.Inbound
}

// Poll is the behaviour shared by the three community polls on a game.
type Poll interface {
	Name() string
	TotalVotes() int
	// Results returns every result of the poll in document order.
	Results() []PollResult
}

// PollResult is one answer of a poll and the number of votes it received.
type PollResult struct {
	Level    *int
	Value    string
	NumVotes int
}

// PlayerCountGroup holds the votes for one player count. NumPlayers is kept
// verbatim since it can be a label such as "4+".
type PlayerCountGroup struct {
	NumPlayers string
	Results    []PollResult
}

// SuggestedPlayersPoll is the "User Suggested Number of Players" poll.
type SuggestedPlayersPoll struct {
	Votes  int
	Groups []PlayerCountGroup
}

func (p SuggestedPlayersPoll) Name() string    { return PollSuggestedPlayers }
func (p SuggestedPlayersPoll) TotalVotes() int { return p.Votes }

func (p SuggestedPlayersPoll) Results() []PollResult {
	var out []PollResult
	for _, g := range p.Groups {
		out = append(out, g.Results...)
	}
	return out
}

// Group returns the results for an exact player count label.
func (p SuggestedPlayersPoll) Group(numPlayers string) ([]PollResult, bool) {
	for _, g := range p.Groups {
		if g.NumPlayers == numPlayers {
			return g.Results, true
		}
	}
	return nil, false
}

// ByPlayerCount returns the groups keyed by player count label.
func (p SuggestedPlayersPoll) ByPlayerCount() map[string][]PollResult {
	if p.Groups == nil {
		return nil
	}
	out := make(map[string][]PollResult, len(p.Groups))
	for _, g := range p.Groups {
		out[g.NumPlayers] = g.Results
	}
	return out
}

// BestPlayerCount returns the label whose "Best" answer got the most votes.
func (p SuggestedPlayersPoll) BestPlayerCount() (string, bool) {
	best, bestVotes := "", 0
	for _, g := range p.Groups {
		for _, r := range g.Results {
			if r.Value == "Best" && r.NumVotes > bestVotes {
				best, bestVotes = g.NumPlayers, r.NumVotes
			}
		}
	}
	return best, bestVotes > 0
}

// SuggestedPlayerAgePoll is the "User Suggested Player Age" poll.
type SuggestedPlayerAgePoll struct {
	Votes   int
	Entries []PollResult
}

func (p SuggestedPlayerAgePoll) Name() string          { return PollSuggestedPlayerAge }
func (p SuggestedPlayerAgePoll) TotalVotes() int       { return p.Votes }
func (p SuggestedPlayerAgePoll) Results() []PollResult { return p.Entries }

// LanguageDependencePoll is the "Language Dependence" poll. Its results carry a level.
type LanguageDependencePoll struct {
	Votes   int
	Entries []PollResult
}

func (p LanguageDependencePoll) Name() string          { return PollLanguageDependence }
func (p LanguageDependencePoll) TotalVotes() int       { return p.Votes }
func (p LanguageDependencePoll) Results() []PollResult { return p.Entries }

// Statistics holds the ratings block of a thing requested with stats=1.
type Statistics struct {
	UsersRated    int
	Average       float64
	BayesAverage  float64
	StdDev        float64
	Median        float64
	Owned         int
	Trading       int
	Wanting       int
	Wishing       int
	NumComments   int
	NumWeights    int
	AverageWeight float64
	Ranks         []Rank
}

// Rank is a game's position within a ranking list.
type Rank struct {
	Type         string
	ID           int
	Name         string
	FriendlyName string
	// Value is 0 when the game is not ranked in this list
	Value        int
	BayesAverage float64
}

// Ranked reports whether the game holds a position in this list.
func (r Rank) Ranked() bool {
	return r.Value > 0
}

// OverallRank returns the "boardgame" subtype rank, or 0 if the game is unranked.
func OverallRank(ranks []Rank) int {
	for _, r := range ranks {
		if r.Type == "subtype" && r.Name == "boardgame" {
			return r.Value
		}
	}
	return 0
}

// CollectionEntry is an item of a user's collection.
type CollectionEntry struct {
	ObjectID  int
	Name      string
	SortIndex int
	CollID    int
	Status    CollectionStatus
	// Stats is present when the collection was requested with stats=1
	Stats *CollectionStats

	YearPublished   *int
	ImagePath       *string
	ThumbnailPath   *string
	NumPlays        *int
	WishlistComment *string
	Comment         *string
}

// SortName returns the name with its leading article skipped.
func (e CollectionEntry) SortName() string {
	return sortName(e.Name, e.SortIndex)
}

// ImageURL returns the full URL of the entry's image, or nil.
func (e CollectionEntry) ImageURL() *url.URL {
	return imageURL(e.ImagePath)
}

// ThumbnailURL returns the full URL of the entry's thumbnail, or nil.
func (e CollectionEntry) ThumbnailURL() *url.URL {
	return imageURL(e.ThumbnailPath)
}

// CollectionStatus holds the ownership and interest flags of a collection entry.
type CollectionStatus struct {
	Own        bool
	PrevOwned  bool
	WantToBuy  bool
	WantToPlay bool
	PreOrdered bool
	// Want means the user wants the game in trade
	Want     bool
	ForTrade bool
	Wishlist bool
	// WishlistPriority is normally only set when Wishlist is true
	WishlistPriority *int
	LastModified     string
}

// LastModifiedLayout is the timestamp format of the lastmodified attribute.
const LastModifiedLayout = "2006-01-02 15:04:05"

// LastModifiedTime parses LastModified. The service does not state a time
// zone; the value is interpreted as UTC.
func (s CollectionStatus) LastModifiedTime() (time.Time, error) {
	return time.Parse(LastModifiedLayout, s.LastModified)
}

// CollectionStats holds the statistics of a collection entry.
type CollectionStats struct {
	MinPlayers  *int
	MaxPlayers  *int
	MinPlaytime *int
	MaxPlaytime *int
	PlayingTime *int
	NumOwned    int
	Rating      CollectionRating
}

// CollectionRating holds community and user ratings of a collection entry.
type CollectionRating struct {
	// UserRating is nil when the user has not rated the game ("N/A")
	UserRating   *float64
	UsersRated   *int
	Average      float64
	BayesAverage float64
	StdDev       *float64
	Median       *float64
	Ranks        []Rank
}

// SearchResult is an item returned by the search endpoint.
type SearchResult struct {
	Type          string
	ObjectID      int
	NameType      string
	Name          string
	YearPublished *int
}

// sortName skips the first sortIndex-1 characters of name. Out of range
// indices yield the full name.
func sortName(name string, sortIndex int) string {
	runes := []rune(name)
	if sortIndex <= 1 || sortIndex > len(runes) {
		return name
	}
	return string(runes[sortIndex-1:])
}

// imageURL turns the protocol-relative paths used by the service
// ("//cf.geekdo-images.com/...") into absolute https URLs.
func imageURL(path *string) *url.URL {
	if path == nil {
		return nil
	}
	raw := strings.TrimSpace(*path)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}
