package ponyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMaze = `{
	"maze_id": "abc",
	"pony": [0],
	"domokun": [3],
	"end-point": [1],
	"size": [2, 2],
	"difficulty": 4,
	"data": [["north", "west"], ["north"], ["north", "west"], ["north", "west"]],
	"game-state": {"state": "Active", "state-result": "Successfully created"}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /pony-challenge/maze", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-type"))
		var req CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.PlayerName != "Spike" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "Only ponies can play")
			return
		}
		fmt.Fprint(w, `{"maze_id":"abc"}`)
	})
	mux.HandleFunc("GET /pony-challenge/maze/abc", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleMaze)
	})
	mux.HandleFunc("POST /pony-challenge/maze/abc", func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Direction == "east" {
			fmt.Fprint(w, `{"state":"won","state-result":"You won. Game ended","hidden-url":"/x.jpg"}`)
			return
		}
		fmt.Fprint(w, `{"state":"active","state-result":"Can't walk in there"}`)
	})
	mux.HandleFunc("GET /pony-challenge/maze/abc/print", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "+---+---+\n")
	})
	mux.HandleFunc("GET /pony-challenge/maze/garbage", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"size":[2,2],"data":[]}`)
	})
	mux.HandleFunc("GET /pony-challenge/maze/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClient(server.URL+"/pony-challenge/maze/", server.Client(), nil, 50*time.Millisecond)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		id, err := client.Create(ctx, domain.CreateRequest{Width: 15, Height: 15, PlayerName: "Spike", Difficulty: 1})
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("Create rejected", func(t *testing.T) {
		_, err := client.Create(ctx, domain.CreateRequest{Width: 15, Height: 15, PlayerName: "Derpy"})
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "Only ponies can play")
	})

	t.Run("Fetch", func(t *testing.T) {
		s, err := client.Fetch(ctx, "abc")
		require.NoError(t, err)

		assert.Equal(t, "abc", s.MazeID)
		assert.Equal(t, 0, s.Agent)
		assert.Equal(t, 3, s.Hunter)
		assert.Equal(t, 1, s.Exit)
		assert.Equal(t, 4, s.Difficulty)
		assert.True(t, s.GameState.Active())
		assert.Equal(t, []maze.Direction{maze.East}, s.Grid.AvailableMoves(0))
		assert.True(t, s.Grid.Walled(2, maze.East))
	})

	t.Run("Move", func(t *testing.T) {
		res, err := client.Move(ctx, "abc", maze.East)
		require.NoError(t, err)
		assert.Equal(t, domain.StateWon, res.State)
		assert.Equal(t, "/x.jpg", res.HiddenURL)

		res, err = client.Move(ctx, "abc", maze.North)
		require.NoError(t, err)
		assert.True(t, res.Active())
		assert.Equal(t, "Can't walk in there", res.Result)
	})

	t.Run("Render", func(t *testing.T) {
		text, err := client.Render(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "+---+---+\n", text)
	})

	t.Run("Unknown maze", func(t *testing.T) {
		_, err := client.Fetch(ctx, "missing")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("Malformed maze", func(t *testing.T) {
		_, err := client.Fetch(ctx, "garbage")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Request timeout", func(t *testing.T) {
		_, err := client.Fetch(ctx, "slow")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Invalid base url", func(t *testing.T) {
		_, err := NewClient("not a url", nil, nil, 0)
		assert.Error(t, err)
	})
}

func TestCodec(t *testing.T) {
	var res MazeResponse
	require.NoError(t, json.Unmarshal([]byte(sampleMaze), &res))

	s, err := DecodeMaze(&res)
	require.NoError(t, err)
	encoded := EncodeMaze(s)
	assert.Equal(t, res.Data, encoded.Data)
	assert.Equal(t, res.Size, encoded.Size)
	assert.Equal(t, "active", encoded.GameState.State)

	t.Run("Reject bad payloads", func(t *testing.T) {
		bad := []MazeResponse{
			{Size: []int{2}},
			{Size: []int{2, 2}, Data: make([][]string, 3)},
			{Size: []int{1, 1}, Data: [][]string{{"south"}}, Pony: []int{0}, Domokun: []int{0}, EndPoint: []int{0}},
			{Size: []int{1, 1}, Data: [][]string{{}}, Pony: []int{1}, Domokun: []int{0}, EndPoint: []int{0}},
			{Size: []int{1, 1}, Data: [][]string{{}}, Domokun: []int{0}, EndPoint: []int{0}},
		}
		for k := range bad {
			_, err := DecodeMaze(&bad[k])
			assert.ErrorIs(t, err, ErrMalformedResponse, "payload %d", k)
		}
	})
}
