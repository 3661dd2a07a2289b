package sportsapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaguesBody = `{
  "get": "leagues",
  "errors": [],
  "results": 2,
  "response": [
    {"league": {"id": 39, "name": "Premier League", "type": "League"}, "country": {"name": "England", "code": "GB"}},
    {"league": {"id": 253, "name": "Major League Soccer"}, "country": {"name": "USA"}}
  ]
}`

const teamsBody = `{
  "get": "teams",
  "response": [
    {"team": {"id": 33, "name": "Manchester United", "logo": "https://media.api-sports.io/football/teams/33.png"}, "venue": {"id": 556}},
    {"team": {"id": 40, "name": "Liverpool"}}
  ]
}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL + "/",
		APIKey:  "test-key",
		Logger:  quietLogger(),
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		cfg     Config
	}{
		{name: "missing key", cfg: Config{}, wantErr: common.ErrMissingConfig},
		{name: "bad base url", cfg: Config{APIKey: "k", BaseURL: "not a url"}, wantErr: common.ErrInvalidConfig},
		{name: "negative retries", cfg: Config{APIKey: "k", RetryMax: -1}, wantErr: common.ErrInvalidConfig},
		{name: "defaults", cfg: Config{APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://v3.football.api-sports.io", client.baseURL)
		})
	}
}

func TestClient_Leagues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/leagues", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-apisports-key"))
		_, _ = io.WriteString(w, leaguesBody)
	})

	leagues, err := client.Leagues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.LeagueRecord{
		{ID: 39, Name: "Premier League", CountryName: "England"},
		{ID: 253, Name: "Major League Soccer", CountryName: "USA"},
	}, leagues)
}

func TestClient_Teams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		assert.Equal(t, "39", r.URL.Query().Get("league"))
		_, _ = io.WriteString(w, teamsBody)
	})

	teams, err := client.Teams(context.Background(), 39)
	require.NoError(t, err)
	assert.Equal(t, []model.TeamRecord{
		{ID: 33, Name: "Manchester United", Logo: "https://media.api-sports.io/football/teams/33.png"},
		{ID: 40, Name: "Liverpool"},
	}, teams)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		check   func(t *testing.T, err error)
		name    string
		body    string
		message string
		status  int
	}{
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"message":"boom"}`,
			message: "Server error: 500",
			check: func(t *testing.T, err error) {
				var serverErr *common.ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, 500, serverErr.Code)
			},
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			message: "Server error: 403",
		},
		{
			name:    "empty response array",
			status:  http.StatusOK,
			body:    `{"response": []}`,
			message: "No leagues found",
		},
		{
			name:    "missing response",
			status:  http.StatusOK,
			body:    `{"errors": {"token": "Error/Missing application key"}}`,
			message: "No leagues found",
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   `{"response": [`,
			check: func(t *testing.T, err error) {
				var netErr *common.NetworkError
				assert.ErrorAs(t, err, &netErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			leagues, err := client.Leagues(context.Background())
			require.Error(t, err)
			assert.Nil(t, leagues)
			if tt.message != "" {
				assert.Equal(t, tt.message, common.UserMessage(err))
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestClient_EmptyTeams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response": []}`)
	})

	_, err := client.Teams(context.Background(), 1)
	assert.Equal(t, "No teams found", common.UserMessage(err))
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := New(Config{BaseURL: url, APIKey: "k", Logger: quietLogger()})
	require.NoError(t, err)

	_, err = client.Leagues(context.Background())
	var netErr *common.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, common.UserMessage(err), "Network error: ")
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, leaguesBody)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Leagues(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_Retries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, leaguesBody)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:   server.URL,
		APIKey:    "k",
		Logger:    quietLogger(),
		RetryMax:  1,
		RetryWait: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	leagues, err := client.Leagues(context.Background())
	require.NoError(t, err)
	assert.Len(t, leagues, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Leagues(context.Background())
	assert.Equal(t, "Server error: 502", common.UserMessage(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestMockClient(t *testing.T) {
	mock := NewMockClient()
	mock.TeamsFn = func(_ context.Context, leagueID int) ([]model.TeamRecord, error) {
		return []model.TeamRecord{{ID: leagueID}}, nil
	}

	leagues, err := mock.Leagues(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leagues)

	teams, err := mock.Teams(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, teams[0].ID)

	assert.Equal(t, 1, mock.LeaguesCallCount())
	assert.Equal(t, []int{7}, mock.TeamsCallArgs())

	mock.Reset()
	assert.Zero(t, mock.LeaguesCallCount())
	assert.Empty(t, mock.TeamsCallArgs())
}
