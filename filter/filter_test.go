package filter

import (
	"testing"
	"time"

	"github.com/s0up4200/bggxml/bgg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testEntries() []bgg.CollectionEntry {
	return []bgg.CollectionEntry{
		{
			ObjectID:      84876,
			Name:          "The Castles of Burgundy",
			SortIndex:     5,
			YearPublished: ptr(2011),
			NumPlays:      ptr(6),
			Status:        bgg.CollectionStatus{Own: true, LastModified: "2015-12-18 09:38:29"},
			Stats: &bgg.CollectionStats{
				MinPlayers:  ptr(2),
				MaxPlayers:  ptr(4),
				PlayingTime: ptr(90),
				NumOwned:    32658,
				Rating: bgg.CollectionRating{
					UserRating:   ptr(8.0),
					Average:      8.07919,
					BayesAverage: 7.92066,
					Ranks: []bgg.Rank{
						{Type: "subtype", Name: "boardgame", Value: 11},
					},
				},
			},
		},
		{
			ObjectID:      177590,
			Name:          "13 Days: The Cuban Missile Crisis",
			SortIndex:     1,
			YearPublished: ptr(2015),
			NumPlays:      ptr(0),
			Status: bgg.CollectionStatus{
				Wishlist:         true,
				WishlistPriority: ptr(3),
				LastModified:     "2016-04-04 20:19:37",
			},
		},
		{
			ObjectID:  31260,
			Name:      "Agricola",
			SortIndex: 1,
			Status:    bgg.CollectionStatus{PrevOwned: true, ForTrade: true, LastModified: "bad"},
		},
	}
}

func names(entries []bgg.CollectionEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "empty", expression: "   "},
		{name: "syntax", expression: "Own &&"},
		{name: "unknown variable", expression: "Foo > 1"},
		{name: "not boolean", expression: "Year + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			assert.Nil(t, f)
			var compErr *CompilationError
			require.ErrorAs(t, err, &compErr)
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	now := time.Date(2016, 4, 14, 20, 19, 37, 0, time.UTC)

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "owned", expression: "Own", want: []string{"The Castles of Burgundy"}},
		{name: "unplayed", expression: "Plays == 0", want: []string{"13 Days: The Cuban Missile Crisis", "Agricola"}},
		{name: "wishlist priority", expression: "Wishlist && WishlistPriority <= 3", want: []string{"13 Days: The Cuban Missile Crisis"}},
		{name: "player count", expression: "playsWith(3)", want: []string{"The Castles of Burgundy"}},
		{name: "rank and rating", expression: "Rank > 0 && Rank <= 100 && UserRating >= 8", want: []string{"The Castles of Burgundy"}},
		{name: "string helpers", expression: `contains(Name, "cuban") || startsWith(SortName, "castles")`, want: []string{"The Castles of Burgundy", "13 Days: The Cuban Missile Crisis"}},
		{name: "no stats", expression: "!hasStats()", want: []string{"13 Days: The Cuban Missile Crisis", "Agricola"}},
		{name: "recently modified", expression: "daysSinceModified() >= 0 && daysSinceModified() < 30", want: []string{"13 Days: The Cuban Missile Crisis"}},
		{name: "entry access", expression: "Entry.ObjectID == 31260 && ForTrade", want: []string{"Agricola"}},
		{name: "year range", expression: "Year >= 2010 && Year < 2015", want: []string{"The Castles of Burgundy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression, WithNow(func() time.Time { return now }))
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
			assert.Equal(t, tt.want, names(f.Apply(testEntries())))
		})
	}
}

func TestFilter_EvaluationError(t *testing.T) {
	f, err := Compile("Year % Plays == 0")
	require.NoError(t, err)

	entries := testEntries()

	ok, err := f.Evaluate(entries[0])
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.Evaluate(entries[1])
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "13 Days: The Cuban Missile Crisis", evalErr.EntryName)
	assert.False(t, f.Matches(entries[1]))
}
