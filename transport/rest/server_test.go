package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/rocketscienceinc/kalah-backend/internal/repository"
	"github.com/rocketscienceinc/kalah-backend/internal/service"
	"github.com/rocketscienceinc/kalah-backend/internal/usecase"
)

const rootAddress = "http://localhost:9090/games/"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gameService := service.NewGameService(repository.NewMemoryGameRepository(), entity.DefaultInitialStones)
	gameUseCase := usecase.NewGameUseCase(logger, gameService, kalah.NewMoveProcessor(logger))

	srv := httptest.NewServer(New(logger, gameUseCase, rootAddress).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func doRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func createGame(t *testing.T, srv *httptest.Server) CreateGameResponse {
	t.Helper()

	resp := doRequest(t, http.MethodPost, srv.URL+"/games")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decode[CreateGameResponse](t, resp)
}

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/ping")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_CreateGame(t *testing.T) {
	srv := newTestServer(t)

	// When: a game is created
	created := createGame(t, srv)

	// Then: the id is a GUID and the uri points at it
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, rootAddress+created.ID, created.URI)
}

func TestServer_GetGame(t *testing.T) {
	srv := newTestServer(t)
	created := createGame(t, srv)

	t.Run("Fresh board", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, srv.URL+"/games/"+created.ID)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		game := decode[GameResponse](t, resp)
		assert.Equal(t, created.ID, game.ID)
		assert.Equal(t, rootAddress+created.ID, game.URL)
		assert.Equal(t, entity.BoardSnapshot{6, 6, 6, 6, 6, 6, 0, 6, 6, 6, 6, 6, 6, 0}, game.Status)
		assert.Equal(t, "Player one turn", game.GameState)
	})

	t.Run("Unknown game", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, srv.URL+"/games/"+uuid.NewString())

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		errResp := decode[ErrorResponse](t, resp)
		assert.Equal(t, http.StatusNotFound, errResp.HTTPCode)
		assert.Equal(t, "game not found", errResp.Message)
	})

	t.Run("Malformed id", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, srv.URL+"/games/1234")

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errResp := decode[ErrorResponse](t, resp)
		assert.Equal(t, "game id must be a valid GUID", errResp.Message)
	})
}

func TestServer_MakeMove(t *testing.T) {
	t.Run("Extra turn", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv)

		// When: Player 1 plays pit 1
		resp := doRequest(t, http.MethodPut, srv.URL+"/games/"+created.ID+"/pits/1")

		// Then: the last stone lands in the kalah and the raw body is keyed by slot
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "`+created.ID+`",
			"url": "`+rootAddress+created.ID+`",
			"status": {"1":0,"2":7,"3":7,"4":7,"5":7,"6":7,"7":1,"8":6,"9":6,"10":6,"11":6,"12":6,"13":6,"14":0},
			"gameState": "Player one turn"
		}`, string(body))
	})

	t.Run("Turn passes", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv)

		resp := doRequest(t, http.MethodPut, srv.URL+"/games/"+created.ID+"/pits/2")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		game := decode[GameResponse](t, resp)
		assert.Equal(t, "Player two turn", game.GameState)
	})

	tests := []struct {
		name    string
		pit     string
		message string
	}{
		{name: "Kalah", pit: "7", message: "you cannot start your turn at a kalah"},
		{name: "Opponent pit", pit: "8", message: "that pit does not belong to you"},
		{name: "Out of range", pit: "15", message: "pit number must be between 1 and 14"},
		{name: "Zero", pit: "0", message: "pit number must be between 1 and 14"},
		{name: "Not a number", pit: "abc", message: "pit number must be between 1 and 14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			created := createGame(t, srv)

			resp := doRequest(t, http.MethodPut, srv.URL+"/games/"+created.ID+"/pits/"+tt.pit)

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			errResp := decode[ErrorResponse](t, resp)
			assert.Equal(t, http.StatusBadRequest, errResp.HTTPCode)
			assert.Equal(t, tt.message, errResp.Message)

			// the rejected move leaves the board untouched
			state := doRequest(t, http.MethodGet, srv.URL+"/games/"+created.ID)
			assert.Equal(t, entity.BoardSnapshot{6, 6, 6, 6, 6, 6, 0, 6, 6, 6, 6, 6, 6, 0},
				decode[GameResponse](t, state).Status)
		})
	}

	t.Run("Empty pit", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv)

		// pit 1 ends in the kalah, so Player 1 moves again
		resp := doRequest(t, http.MethodPut, srv.URL+"/games/"+created.ID+"/pits/1")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doRequest(t, http.MethodPut, srv.URL+"/games/"+created.ID+"/pits/1")

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "please choose a pit which is not empty", decode[ErrorResponse](t, resp).Message)
	})

	t.Run("Unknown game", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doRequest(t, http.MethodPut, srv.URL+"/games/"+uuid.NewString()+"/pits/1")

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_DeleteGame(t *testing.T) {
	srv := newTestServer(t)
	created := createGame(t, srv)

	t.Run("Deletes the game", func(t *testing.T) {
		// When: the game is deleted
		resp := doRequest(t, http.MethodDelete, srv.URL+"/games/"+created.ID)

		// Then: it is gone
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		state := doRequest(t, http.MethodGet, srv.URL+"/games/"+created.ID)
		assert.Equal(t, http.StatusNotFound, state.StatusCode)
	})

	t.Run("Already deleted", func(t *testing.T) {
		resp := doRequest(t, http.MethodDelete, srv.URL+"/games/"+created.ID)

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "game not found", decode[ErrorResponse](t, resp).Message)
	})

	t.Run("Non-canonical id", func(t *testing.T) {
		other := createGame(t, srv)

		resp := doRequest(t, http.MethodDelete, srv.URL+"/games/"+strings.ReplaceAll(other.ID, "-", ""))

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "game id must be a valid GUID", decode[ErrorResponse](t, resp).Message)

		state := doRequest(t, http.MethodGet, srv.URL+"/games/"+other.ID)
		assert.Equal(t, http.StatusOK, state.StatusCode)
	})
}

type panickingUseCase struct{}

func (panickingUseCase) CreateGame(context.Context) (entity.GameSnapshot, error) {
	panic("boom")
}

func (panickingUseCase) GetGame(context.Context, string) (entity.GameSnapshot, error) {
	panic("boom")
}

func (panickingUseCase) MakeMove(context.Context, string, int) (entity.GameSnapshot, error) {
	panic("boom")
}

func (panickingUseCase) DeleteGame(context.Context, string) error {
	panic("boom")
}

func TestServer_Middleware(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(New(logger, panickingUseCase{}, rootAddress).Handler())
	t.Cleanup(srv.Close)

	t.Run("Recovers from panics", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, srv.URL+"/games")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("CORS headers", func(t *testing.T) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/ping", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wrong method", func(t *testing.T) {
		resp := doRequest(t, http.MethodDelete, srv.URL+"/games")

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
