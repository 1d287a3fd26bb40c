package bgg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection(t *testing.T) {
	entries, err := decodeFixture(t, "collection.xml", collectionShape)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	t.Run("owned with stats", func(t *testing.T) {
		e := entries[0]
		assert.Equal(t, 84876, e.ObjectID)
		assert.Equal(t, 29577003, e.CollID)
		assert.Equal(t, "The Castles of Burgundy", e.Name)
		assert.Equal(t, 5, e.SortIndex)
		assert.Equal(t, "Castles of Burgundy", e.SortName())
		require.NotNil(t, e.YearPublished)
		assert.Equal(t, 2011, *e.YearPublished)
		require.NotNil(t, e.NumPlays)
		assert.Equal(t, 6, *e.NumPlays)
		assert.Equal(t, "https://cf.geekdo-images.com/images/pic1176894.jpg", e.ImageURL().String())
		assert.Equal(t, "https://cf.geekdo-images.com/images/pic1176894_t.jpg", e.ThumbnailURL().String())
		require.NotNil(t, e.Comment)
		assert.Equal(t, "Great with two.", *e.Comment)
		assert.Nil(t, e.WishlistComment)

		want := CollectionStatus{Own: true, LastModified: "2015-12-18 09:38:29"}
		if diff := cmp.Diff(want, e.Status); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, e.Stats)
		assert.Equal(t, 2, *e.Stats.MinPlayers)
		assert.Equal(t, 4, *e.Stats.MaxPlayers)
		assert.Equal(t, 30, *e.Stats.MinPlaytime)
		assert.Equal(t, 90, *e.Stats.MaxPlaytime)
		assert.Equal(t, 90, *e.Stats.PlayingTime)
		assert.Equal(t, 32658, e.Stats.NumOwned)

		rating := e.Stats.Rating
		require.NotNil(t, rating.UserRating)
		assert.Equal(t, 8.0, *rating.UserRating)
		assert.Equal(t, 24463, *rating.UsersRated)
		assert.Equal(t, 8.07919, rating.Average)
		assert.Equal(t, 7.92066, rating.BayesAverage)
		assert.Equal(t, 1.21735, *rating.StdDev)
		assert.Equal(t, 0.0, *rating.Median)
		require.Len(t, rating.Ranks, 2)
		assert.Equal(t, 11, OverallRank(rating.Ranks))
	})

	t.Run("wishlist without user rating", func(t *testing.T) {
		e := entries[1]
		assert.Equal(t, "13 Days: The Cuban Missile Crisis", e.SortName())
		assert.True(t, e.Status.Wishlist)
		assert.True(t, e.Status.WantToPlay)
		assert.False(t, e.Status.Own)
		require.NotNil(t, e.Status.WishlistPriority)
		assert.Equal(t, 3, *e.Status.WishlistPriority)
		require.NotNil(t, e.NumPlays)
		assert.Equal(t, 0, *e.NumPlays)
		require.NotNil(t, e.WishlistComment)
		assert.Equal(t, "Waiting for a reprint", *e.WishlistComment)

		require.NotNil(t, e.Stats)
		assert.Nil(t, e.Stats.Rating.UserRating)
		assert.Equal(t, 70, *e.Stats.Rating.UsersRated)
	})

	t.Run("sparse entry", func(t *testing.T) {
		e := entries[2]
		assert.True(t, e.Status.PrevOwned)
		assert.True(t, e.Status.ForTrade)
		assert.Nil(t, e.Status.WishlistPriority)
		assert.Nil(t, e.YearPublished)
		assert.Nil(t, e.NumPlays)
		assert.Nil(t, e.ImageURL())

		require.NotNil(t, e.Stats)
		assert.Nil(t, e.Stats.MinPlayers)
		assert.Nil(t, e.Stats.PlayingTime)
		assert.Equal(t, 71234, e.Stats.NumOwned)
		assert.Equal(t, 7.5, *e.Stats.Rating.UserRating)
		assert.Nil(t, e.Stats.Rating.UsersRated)
		assert.Nil(t, e.Stats.Rating.StdDev)
		assert.Empty(t, e.Stats.Rating.Ranks)
	})
}

func TestDecodeCollection_Empty(t *testing.T) {
	entries, err := decodeFixture(t, "collection_empty.xml", collectionShape)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestDecodeCollection_MissingOwnFailsWholeBatch(t *testing.T) {
	entries, err := decodeFixture(t, "collection_missing_own.xml", collectionShape)
	require.Error(t, err)
	assert.Nil(t, entries)

	var tce *TypeConversionError
	require.ErrorAs(t, err, &tce)
	assert.Equal(t, "CollectionEntry", tce.Entity)
	assert.Contains(t, tce.Element, `objectid="177590"`)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "own", fieldErr.Field)
	assert.Equal(t, "status", fieldErr.Element)
	assert.True(t, fieldErr.Missing)
}

func TestDecodeCollection_APIError(t *testing.T) {
	_, err := decodeFixture(t, "error_username.xml", collectionShape)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid username specified", apiErr.Message)
}
