package bgg

import (
	"errors"
	"fmt"
	"io"
)

// shape describes how a response document maps to entities: every <child>
// under <root> is decoded with decode.
type shape[T any] struct {
	root   string
	child  string
	decode func(*Node) (T, error)
}

var (
	gameShape       = shape[Game]{root: "items", child: "item", decode: decodeGame}
	collectionShape = shape[CollectionEntry]{root: "items", child: "item", decode: decodeCollectionEntry}
	searchShape     = shape[SearchResult]{root: "items", child: "item", decode: decodeSearchResult}
)

// decodeDocument parses body and decodes its entities in document order.
// A document without the root element yields an empty list.
func decodeDocument[T any](body io.Reader, s shape[T]) ([]T, error) {
	doc, err := ParseDocument(body)
	if err != nil {
		return nil, err
	}

	if err := classifyAPIError(doc); err != nil {
		return nil, err
	}

	out := []T{}
	for _, n := range doc.Path(s.root, s.child) {
		v, err := s.decode(n)
		if err != nil {
			return nil, wrapDecodeError(err)
		}
		out = append(out, v)
	}
	return out, nil
}

func wrapDecodeError(err error) error {
	var tce *TypeConversionError
	if errors.As(err, &tce) {
		return &XMLError{Detail: fmt.Sprintf("could not deserialize %s", tce.Entity), Err: err}
	}
	return &XMLError{Detail: "unexpected document", Err: err}
}
