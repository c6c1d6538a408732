// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/auth"
	"github.com/maintainarr/maintainarr/internal/authz"
	"github.com/maintainarr/maintainarr/internal/config"
	"github.com/maintainarr/maintainarr/internal/database"
	"github.com/maintainarr/maintainarr/internal/models"
	"github.com/maintainarr/maintainarr/internal/ratings"
)

type fakeDispatcher struct {
	mu   sync.Mutex
	last models.ProviderConfig
	data map[string]interface{}
	err  error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, cfg models.ProviderConfig) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = cfg
	return f.data, f.err
}

type fakeRatings struct {
	last ratings.Query
}

func (f *fakeRatings) Lookup(_ context.Context, q ratings.Query) (*models.AggregatedRatings, error) {
	f.last = q
	v := 8.0
	agg := ratings.Aggregate(q.Title, q.Year, nil, nil,
		&models.TVMazeRating{Source: models.SourceTVMaze, Found: true, Rating: &v})
	return &agg, nil
}

// fakePlex accepts tokens of the form "token-<email>".
type fakePlex struct{}

func (fakePlex) Verify(_ context.Context, token string) (*database.PlexAccount, error) {
	email, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return nil, apperrors.NewUnauthorized("Invalid Plex token")
	}
	return &database.PlexAccount{
		PlexID:   int64(len(email)*1000 + int(email[0])),
		Email:    email,
		Username: strings.SplitN(email, "@", 2)[0],
		Token:    token,
	}, nil
}

type testServer struct {
	handler    http.Handler
	db         *database.DB
	dispatcher *fakeDispatcher
	ratings    *fakeRatings
}

func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Path: database.MemoryPath}, nil)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	signer, err := auth.NewCookieSigner("test-secret")
	if err != nil {
		t.Fatal(err)
	}
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Env: env, CommitTag: "test-build"}
	ts := &testServer{db: db, dispatcher: &fakeDispatcher{}, ratings: &fakeRatings{}}
	h := NewHandler(Dependencies{
		Config:    cfg,
		DB:        db,
		Providers: ts.dispatcher,
		Ratings:   ts.ratings,
		Sessions:  auth.NewManager(auth.NewSQLStore(db, time.Hour, 0), signer, auth.ManagerConfig{TTL: time.Hour}),
		Plex:      fakePlex{},
	})
	ts.handler = NewRouter(h, enforcer)
	return ts
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *apperrors.Body `json:"error"`
}

func (ts *testServer) do(t *testing.T, method, target, body string, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v\n%s", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

// login signs in as email and returns the session cookie.
func (ts *testServer) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	rec, env := ts.do(t, http.MethodPost, "/api/auth/plex", `{"authToken":"token-`+email+`"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	if env.Status != models.StatusOK {
		t.Fatalf("login envelope = %+v", env)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.DefaultCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func checkStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d: %s", rec.Code, want, rec.Body.String())
	}
}

func checkErrorType(t *testing.T, env envelope, want string) {
	t.Helper()
	if env.Status != models.StatusError || env.Error == nil {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	if env.Error.Type != want {
		t.Errorf("error type = %s, want %s", env.Error.Type, want)
	}
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

var errUpstream = errors.New("sonarr: request failed: connection refused")
