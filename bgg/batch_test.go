package bgg

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thingItem renders a minimal valid thing item.
func thingItem(id string) string {
	return fmt.Sprintf(`<item type="boardgame" id="%s">
		<name type="primary" sortindex="1" value="Game %s"/>
		<description/>
		<yearpublished value="2000"/><minplayers value="1"/><maxplayers value="4"/>
		<playingtime value="30"/><minplaytime value="30"/><maxplaytime value="30"/><minage value="8"/>
		<poll name="suggested_numplayers" totalvotes="0"></poll>
		<poll name="suggested_playerage" totalvotes="0"><results></results></poll>
		<poll name="language_dependence" totalvotes="0"><results></results></poll>
	</item>`, id, id)
}

// echoThings answers a thing request with one item per requested id.
func echoThings(calls *atomic.Int32, fail string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var sb strings.Builder
		sb.WriteString("<items>")
		for _, id := range strings.Split(r.URL.Query().Get("id"), ",") {
			if id == fail {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			sb.WriteString(thingItem(id))
		}
		sb.WriteString("</items>")
		writeXML(w, http.StatusOK, []byte(sb.String()))
	}
}

func TestFetchGamesByIDBatched(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, echoThings(&calls, ""), WithBatchConcurrency(2))

	ids := make([]int, 45)
	for i := range ids {
		ids[i] = 1000 + i
	}

	games, err := client.FetchGamesByIDBatched(context.Background(), ids, false)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, games, len(ids))
	for i, g := range games {
		assert.Equal(t, ids[i], g.ObjectID)
		assert.Equal(t, "Game "+strconv.Itoa(ids[i]), g.Name)
	}
}

func TestFetchGamesByIDBatched_Failure(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, echoThings(&calls, "1030"))

	ids := make([]int, 45)
	for i := range ids {
		ids[i] = 1000 + i
	}

	games, err := client.FetchGamesByIDBatched(context.Background(), ids, false)
	assert.Nil(t, games)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Contains(t, err.Error(), "batch 2/3")
}

func TestFetchGamesByIDBatched_Empty(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, echoThings(&calls, ""))

	games, err := client.FetchGamesByIDBatched(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.Equal(t, int32(0), calls.Load())
}

func TestChunkIDs(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunkIDs([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2}}, chunkIDs([]int{1, 2}, 20))
	assert.Nil(t, chunkIDs(nil, 20))
}
