package bgg

// decodeSearchResult reads an <item> element of a search response.
func decodeSearchResult(n *Node) (SearchResult, error) {
	r, err := decodeSearchResultFields(n)
	if err != nil {
		return SearchResult{}, &TypeConversionError{Entity: "SearchResult", Element: n.String(), Err: err}
	}
	return r, nil
}

func decodeSearchResultFields(n *Node) (SearchResult, error) {
	var (
		r   SearchResult
		err error
	)

	if r.Type, err = attrString(n, "type"); err != nil {
		return SearchResult{}, err
	}
	if r.ObjectID, err = attrInt(n, "id"); err != nil {
		return SearchResult{}, err
	}

	name, err := requireChild(n, "name")
	if err != nil {
		return SearchResult{}, err
	}
	if r.NameType, err = attrString(name, "type"); err != nil {
		return SearchResult{}, err
	}
	if r.Name, err = attrString(name, "value"); err != nil {
		return SearchResult{}, err
	}

	r.YearPublished = optChildValueInt(n, "yearpublished")
	return r, nil
}
