package bgg

import (
	"fmt"
	"strings"
)

// decodeGame reads an <item> element of a thing response.
func decodeGame(n *Node) (Game, error) {
	game, err := decodeGameFields(n)
	if err != nil {
		return Game{}, &TypeConversionError{Entity: "Game", Element: n.String(), Err: err}
	}
	return game, nil
}

func decodeGameFields(n *Node) (Game, error) {
	var (
		g   Game
		err error
	)

	primary := n.ChildWithAttr("name", "type", "primary")
	if primary == nil {
		return Game{}, &FieldError{Field: "name", Element: n.Name, Missing: true}
	}

	if g.ObjectID, err = attrInt(n, "id"); err != nil {
		return Game{}, err
	}
	if g.Type, err = attrString(n, "type"); err != nil {
		return Game{}, err
	}
	if g.Name, err = attrString(primary, "value"); err != nil {
		return Game{}, err
	}
	if g.SortIndex, err = attrInt(primary, "sortindex"); err != nil {
		return Game{}, err
	}

	g.ImagePath = optChildTrimmed(n, "image")
	g.ThumbnailPath = optChildTrimmed(n, "thumbnail")

	description, err := childText(n, "description")
	if err != nil {
		return Game{}, err
	}
	g.Description = strings.TrimSpace(description)

	values := []struct {
		name string
		dst  *int
	}{
		{"yearpublished", &g.YearPublished},
		{"minplayers", &g.MinPlayers},
		{"maxplayers", &g.MaxPlayers},
		{"playingtime", &g.PlayingTime},
		{"minplaytime", &g.MinPlaytime},
		{"maxplaytime", &g.MaxPlaytime},
		{"minage", &g.MinAge},
	}
	for _, v := range values {
		if *v.dst, err = childValueInt(n, v.name); err != nil {
			return Game{}, err
		}
	}

	if g.SuggestedPlayers, err = decodeSuggestedPlayers(findPoll(n, PollSuggestedPlayers)); err != nil {
		return Game{}, err
	}
	if g.SuggestedPlayerAge, err = decodeSuggestedPlayerAge(findPoll(n, PollSuggestedPlayerAge)); err != nil {
		return Game{}, err
	}
	if g.LanguageDependence, err = decodeLanguageDependence(findPoll(n, PollLanguageDependence)); err != nil {
		return Game{}, err
	}

	for _, child := range n.ChildrenNamed("link") {
		link, err := decodeLink(child)
		if err != nil {
			return Game{}, err
		}
		g.Links = append(g.Links, link)
	}

	if ratings := n.Path("statistics", "ratings"); len(ratings) > 0 {
		stats, err := decodeStatistics(ratings[0])
		if err != nil {
			return Game{}, err
		}
		g.Stats = &stats
	}

	return g, nil
}

// findPoll returns the poll with the given name, or nil. The poll decoders
// report a nil poll as missing.
func findPoll(n *Node, name string) *Node {
	return n.ChildWithAttr("poll", "name", name)
}

func missingPoll(name string) error {
	return &FieldError{Field: fmt.Sprintf("poll[name=%s]", name), Element: "item", Missing: true}
}

func decodeLink(n *Node) (Link, error) {
	var (
		l   Link
		err error
	)
	if l.Type, err = attrString(n, "type"); err != nil {
		return Link{}, err
	}
	if l.ID, err = attrInt(n, "id"); err != nil {
		return Link{}, err
	}
	if l.Value, err = attrString(n, "value"); err != nil {
		return Link{}, err
	}
	l.Inbound = optAttrBool(n, "inbound")
	return l, nil
}

// decodeSuggestedPlayers reads the suggested_numplayers poll. Results are
// grouped by their numplayers label, and only read when the poll has votes.
func decodeSuggestedPlayers(n *Node) (SuggestedPlayersPoll, error) {
	if n == nil {
		return SuggestedPlayersPoll{}, missingPoll(PollSuggestedPlayers)
	}

	votes, err := attrInt(n, "totalvotes")
	if err != nil {
		return SuggestedPlayersPoll{}, err
	}

	poll := SuggestedPlayersPoll{Votes: votes}
	if votes <= 0 {
		return poll, nil
	}

	poll.Groups = []PlayerCountGroup{}
	for _, results := range n.ChildrenNamed("results") {
		label, err := attrString(results, "numplayers")
		if err != nil {
			return SuggestedPlayersPoll{}, err
		}
		entries, err := decodePollResults(results)
		if err != nil {
			return SuggestedPlayersPoll{}, err
		}
		poll.Groups = append(poll.Groups, PlayerCountGroup{NumPlayers: label, Results: entries})
	}
	return poll, nil
}

func decodeSuggestedPlayerAge(n *Node) (SuggestedPlayerAgePoll, error) {
	if n == nil {
		return SuggestedPlayerAgePoll{}, missingPoll(PollSuggestedPlayerAge)
	}
	votes, entries, err := decodeFlatPoll(n)
	if err != nil {
		return SuggestedPlayerAgePoll{}, err
	}
	return SuggestedPlayerAgePoll{Votes: votes, Entries: entries}, nil
}

func decodeLanguageDependence(n *Node) (LanguageDependencePoll, error) {
	if n == nil {
		return LanguageDependencePoll{}, missingPoll(PollLanguageDependence)
	}
	votes, entries, err := decodeFlatPoll(n)
	if err != nil {
		return LanguageDependencePoll{}, err
	}
	return LanguageDependencePoll{Votes: votes, Entries: entries}, nil
}

// decodeFlatPoll reads a poll with a single <results> block.
func decodeFlatPoll(n *Node) (int, []PollResult, error) {
	votes, err := attrInt(n, "totalvotes")
	if err != nil {
		return 0, nil, err
	}
	entries, err := decodePollResults(n.Child("results"))
	if err != nil {
		return 0, nil, err
	}
	return votes, entries, nil
}

func decodePollResults(n *Node) ([]PollResult, error) {
	entries := []PollResult{}
	for _, child := range n.ChildrenNamed("result") {
		r, err := decodePollResult(child)
		if err != nil {
			return nil, err
		}
		entries = append(entries, r)
	}
	return entries, nil
}

func decodePollResult(n *Node) (PollResult, error) {
	var (
		r   PollResult
		err error
	)
	r.Level = optAttrInt(n, "level")
	if r.Value, err = attrString(n, "value"); err != nil {
		return PollResult{}, err
	}
	if r.NumVotes, err = attrInt(n, "numvotes"); err != nil {
		return PollResult{}, err
	}
	return r, nil
}

// decodeStatistics reads the <ratings> element of a thing's statistics block.
func decodeStatistics(n *Node) (Statistics, error) {
	var (
		s   Statistics
		err error
	)

	ints := []struct {
		name string
		dst  *int
	}{
		{"usersrated", &s.UsersRated},
		{"owned", &s.Owned},
		{"trading", &s.Trading},
		{"wanting", &s.Wanting},
		{"wishing", &s.Wishing},
		{"numcomments", &s.NumComments},
		{"numweights", &s.NumWeights},
	}
	for _, v := range ints {
		if *v.dst, err = childValueInt(n, v.name); err != nil {
			return Statistics{}, err
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"average", &s.Average},
		{"bayesaverage", &s.BayesAverage},
		{"stddev", &s.StdDev},
		{"median", &s.Median},
		{"averageweight", &s.AverageWeight},
	}
	for _, v := range floats {
		if *v.dst, err = childValueFloat(n, v.name); err != nil {
			return Statistics{}, err
		}
	}

	if s.Ranks, err = decodeRanks(n); err != nil {
		return Statistics{}, err
	}
	return s, nil
}

func decodeRanks(n *Node) ([]Rank, error) {
	ranks := []Rank{}
	for _, child := range n.Path("ranks", "rank") {
		r, err := decodeRank(child)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}

// decodeRank reads a <rank> element. The service reports "Not Ranked" in
// value and bayesaverage for unranked games; those read as zero.
func decodeRank(n *Node) (Rank, error) {
	var (
		r   Rank
		err error
	)
	if r.Type, err = attrString(n, "type"); err != nil {
		return Rank{}, err
	}
	if r.ID, err = attrInt(n, "id"); err != nil {
		return Rank{}, err
	}
	if r.Name, err = attrString(n, "name"); err != nil {
		return Rank{}, err
	}
	if r.FriendlyName, err = attrString(n, "friendlyname"); err != nil {
		return Rank{}, err
	}
	if v := optAttrInt(n, "value"); v != nil {
		r.Value = *v
	}
	if v := optAttrFloat(n, "bayesaverage"); v != nil {
		r.BayesAverage = *v
	}
	return r, nil
}
