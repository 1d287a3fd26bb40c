package bgg

// decodeCollectionEntry reads an <item> element of a collection response.
func decodeCollectionEntry(n *Node) (CollectionEntry, error) {
	entry, err := decodeCollectionEntryFields(n)
	if err != nil {
		return CollectionEntry{}, &TypeConversionError{Entity: "CollectionEntry", Element: n.String(), Err: err}
	}
	return entry, nil
}

func decodeCollectionEntryFields(n *Node) (CollectionEntry, error) {
	var (
		e   CollectionEntry
		err error
	)

	if e.ObjectID, err = attrInt(n, "objectid"); err != nil {
		return CollectionEntry{}, err
	}
	if e.CollID, err = attrInt(n, "collid"); err != nil {
		return CollectionEntry{}, err
	}

	name, err := requireChild(n, "name")
	if err != nil {
		return CollectionEntry{}, err
	}
	e.Name = name.Text()
	if e.SortIndex, err = attrInt(name, "sortindex"); err != nil {
		return CollectionEntry{}, err
	}

	status, err := requireChild(n, "status")
	if err != nil {
		return CollectionEntry{}, err
	}
	if e.Status, err = decodeCollectionStatus(status); err != nil {
		return CollectionEntry{}, err
	}

	if stats := n.Child("stats"); stats != nil {
		s, err := decodeCollectionStats(stats)
		if err != nil {
			return CollectionEntry{}, err
		}
		e.Stats = &s
	}

	e.YearPublished = optChildTextInt(n, "yearpublished")
	e.ImagePath = optChildTrimmed(n, "image")
	e.ThumbnailPath = optChildTrimmed(n, "thumbnail")
	e.NumPlays = optChildTextInt(n, "numplays")
	e.WishlistComment = optChildTrimmed(n, "wishlistcomment")
	e.Comment = optChildTrimmed(n, "comment")

	return e, nil
}

func decodeCollectionStatus(n *Node) (CollectionStatus, error) {
	var (
		s   CollectionStatus
		err error
	)

	flags := []struct {
		name string
		dst  *bool
	}{
		{"own", &s.Own},
		{"prevowned", &s.PrevOwned},
		{"wanttobuy", &s.WantToBuy},
		{"wanttoplay", &s.WantToPlay},
		{"preordered", &s.PreOrdered},
		{"want", &s.Want},
		{"fortrade", &s.ForTrade},
		{"wishlist", &s.Wishlist},
	}
	for _, f := range flags {
		if *f.dst, err = attrBool(n, f.name); err != nil {
			return CollectionStatus{}, err
		}
	}

	s.WishlistPriority = optAttrInt(n, "wishlistpriority")
	if s.LastModified, err = attrString(n, "lastmodified"); err != nil {
		return CollectionStatus{}, err
	}
	return s, nil
}

// decodeCollectionStats reads the <stats> element. Player and playtime
// attributes are missing for some items, e.g. expansions without data.
func decodeCollectionStats(n *Node) (CollectionStats, error) {
	var (
		s   CollectionStats
		err error
	)

	s.MinPlayers = optAttrInt(n, "minplayers")
	s.MaxPlayers = optAttrInt(n, "maxplayers")
	s.MinPlaytime = optAttrInt(n, "minplaytime")
	s.MaxPlaytime = optAttrInt(n, "maxplaytime")
	s.PlayingTime = optAttrInt(n, "playingtime")

	if s.NumOwned, err = attrInt(n, "numowned"); err != nil {
		return CollectionStats{}, err
	}

	rating, err := requireChild(n, "rating")
	if err != nil {
		return CollectionStats{}, err
	}
	if s.Rating, err = decodeCollectionRating(rating); err != nil {
		return CollectionStats{}, err
	}
	return s, nil
}

// decodeCollectionRating reads a <rating> element. Its value attribute is the
// user's own rating, "N/A" when unrated.
func decodeCollectionRating(n *Node) (CollectionRating, error) {
	var (
		r   CollectionRating
		err error
	)

	r.UserRating = optAttrFloat(n, "value")
	r.UsersRated = optChildValueInt(n, "usersrated")
	if r.Average, err = childValueFloat(n, "average"); err != nil {
		return CollectionRating{}, err
	}
	if r.BayesAverage, err = childValueFloat(n, "bayesaverage"); err != nil {
		return CollectionRating{}, err
	}
	r.StdDev = optChildValueFloat(n, "stddev")
	r.Median = optChildValueFloat(n, "median")

	if r.Ranks, err = decodeRanks(n); err != nil {
		return CollectionRating{}, err
	}
	return r, nil
}
