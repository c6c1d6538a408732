// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/maintainarr/maintainarr/internal/models"
)

func intPtr(v int) *int { return &v }

func newTestTMDB(t *testing.T, h http.HandlerFunc) *TMDB {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	a, err := NewTMDB(models.NewAdHocProviderConfig(models.ProviderTMDB, srv.URL, "tmdb-key", nil), zerolog.Nop())
	require.NoError(t, err)
	return a
}

const tmdbSearchBody = `{"results":[
	{"id":1,"media_type":"movie","title":"Dune","release_date":"1984-12-14","vote_average":6.3},
	{"id":2,"media_type":"person","name":"Someone"},
	{"id":3,"media_type":"movie","title":"Dune","release_date":"2021-09-15","vote_average":7.8}
]}`

func TestTMDB_SearchFiltersMediaTypes(t *testing.T) {
	a := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		assert.Equal(t, "tmdb-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Dune", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(tmdbSearchBody))
	})

	results, err := a.Search(context.Background(), "Dune")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1984, results[0].Year())
}

func TestTMDB_GetRatingsPrefersYearMatch(t *testing.T) {
	tests := []struct {
		name   string
		year   *int
		wantID int64
	}{
		{"no year takes first hit", nil, 1},
		{"matching year wins", intPtr(2021), 3},
		{"no match falls back to first", intPtr(1999), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/search/multi":
					_, _ = w.Write([]byte(tmdbSearchBody))
				case "/movie/1":
					_, _ = w.Write([]byte(`{"id":1,"vote_average":6.3,"vote_count":2000,"popularity":20.5}`))
				case "/movie/3":
					_, _ = w.Write([]byte(`{"id":3,"vote_average":7.8,"vote_count":9000,"popularity":80.1}`))
				default:
					http.NotFound(w, r)
				}
			})

			got := a.GetRatings(context.Background(), "Dune", tt.year)
			require.True(t, got.Found)
			require.NotNil(t, got.TMDBID)
			assert.Equal(t, tt.wantID, *got.TMDBID)
			assert.NotNil(t, got.MovieRating)
			assert.Nil(t, got.TVRating)
		})
	}
}

func TestTMDB_GetRatingsTV(t *testing.T) {
	a := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/multi":
			_, _ = w.Write([]byte(`{"results":[{"id":1396,"media_type":"tv","name":"Breaking Bad","first_air_date":"2008-01-20"}]}`))
		case "/tv/1396":
			_, _ = w.Write([]byte(`{"id":1396,"vote_average":8.9,"vote_count":15000,"popularity":300}`))
		}
	})

	got := a.GetRatings(context.Background(), "Breaking Bad", intPtr(2008))
	require.True(t, got.Found)
	require.NotNil(t, got.TVRating)
	assert.Equal(t, 8.9, *got.TVRating)
	assert.Equal(t, TMDBMediaTV, got.MediaType)
}

func TestTMDB_GetRatingsNeverErrors(t *testing.T) {
	a := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	got := a.GetRatings(context.Background(), "Dune", nil)
	require.NotNil(t, got)
	assert.Equal(t, models.SourceTMDB, got.Source)
	assert.False(t, got.Found)
	assert.Nil(t, got.MovieRating)
	assert.Nil(t, got.TMDBID)
}

func TestTMDB_NoResults(t *testing.T) {
	a := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	got, err := a.LookupRatings(context.Background(), "zzz", nil)
	require.NoError(t, err)
	assert.False(t, got.Found)
}

func newTestOMDB(t *testing.T, h http.HandlerFunc) *OMDB {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	a, err := NewOMDB(models.NewAdHocProviderConfig(models.ProviderOMDB, srv.URL, "omdb-key", nil), zerolog.Nop())
	require.NoError(t, err)
	return a
}

func TestOMDB_RetriesAsSeries(t *testing.T) {
	var kinds []string
	a := newTestOMDB(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "omdb-key", r.URL.Query().Get("apikey"))
		kind := r.URL.Query().Get("type")
		kinds = append(kinds, kind)
		if kind == "movie" {
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			return
		}
		_, _ = w.Write([]byte(`{"Response":"True","imdbID":"tt0903747","imdbRating":"9.5","imdbVotes":"2,100,000",
			"Ratings":[{"Source":"Internet Movie Database","Value":"9.5/10"},{"Source":"Rotten Tomatoes","Value":"96%"},{"Source":"Metacritic","Value":"87/100"}]}`))
	})

	got := a.GetRatings(context.Background(), "Breaking Bad", intPtr(2008))
	assert.Equal(t, []string{"movie", "series"}, kinds)
	require.True(t, got.Found)
	assert.Equal(t, 9.5, *got.IMDBRating)
	assert.Equal(t, int64(2100000), *got.IMDBVotes)
	assert.Equal(t, 96, *got.RottenTomatoes)
	assert.Equal(t, 87, *got.Metacritic)
}

func TestOMDB_NotFoundAfterBothLookups(t *testing.T) {
	var calls int
	a := newTestOMDB(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	got := a.GetRatings(context.Background(), "Nothing", nil)
	assert.Equal(t, 2, calls)
	assert.False(t, got.Found)
	assert.Nil(t, got.IMDBRating)
}

func TestOMDB_NotAvailableValues(t *testing.T) {
	a := newTestOMDB(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"True","imdbRating":"N/A","imdbVotes":"N/A","Ratings":[]}`))
	})

	got := a.GetRatings(context.Background(), "Obscure", nil)
	assert.True(t, got.Found)
	assert.Nil(t, got.IMDBRating)
	assert.Nil(t, got.IMDBVotes)
}

func TestParseScore(t *testing.T) {
	assert.Equal(t, 93, *parseScore("93%", "%"))
	assert.Equal(t, 80, *parseScore("80/100", "/100"))
	assert.Nil(t, parseScore("N/A", "%"))
	assert.Nil(t, parseScore("8.1/10", "/100"))
}

func newTestTVMaze(t *testing.T, h http.HandlerFunc) *TVMaze {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	a, err := NewTVMaze(models.NewAdHocProviderConfig(models.ProviderTVMaze, srv.URL, "", nil), zerolog.Nop())
	require.NoError(t, err)
	a.limiter = rate.NewLimiter(rate.Inf, 1)
	return a
}

func TestTVMaze_GetRatingsYearPreference(t *testing.T) {
	body := `[
		{"score":0.9,"show":{"id":1,"name":"Doctor Who","premiered":"1963-11-23","rating":{"average":7.9}}},
		{"score":0.8,"show":{"id":2,"name":"Doctor Who","premiered":"2005-03-26","rating":{"average":8.2}}}
	]`
	a := newTestTVMaze(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/shows", r.URL.Path)
		_, _ = w.Write([]byte(body))
	})

	got := a.GetRatings(context.Background(), "Doctor Who", intPtr(2005))
	require.True(t, got.Found)
	assert.Equal(t, int64(2), *got.TVMazeID)
	assert.Equal(t, 8.2, *got.Rating)

	got = a.GetRatings(context.Background(), "Doctor Who", nil)
	assert.Equal(t, int64(1), *got.TVMazeID)
}

func TestTVMaze_NoRatingIsNotFound(t *testing.T) {
	a := newTestTVMaze(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"score":1,"show":{"id":9,"name":"New Show","rating":{"average":null}}}]`))
	})

	got := a.GetRatings(context.Background(), "New Show", nil)
	assert.False(t, got.Found)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.TVMazeID)
}

func TestTVMaze_ErrorDegrades(t *testing.T) {
	a := newTestTVMaze(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	got := a.GetRatings(context.Background(), "Anything", nil)
	assert.Equal(t, models.SourceTVMaze, got.Source)
	assert.False(t, got.Found)
}

func TestTVMaze_GetShow(t *testing.T) {
	a := newTestTVMaze(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shows/169", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":169,"name":"Breaking Bad","premiered":"2008-01-20","rating":{"average":9.2}}`))
	})

	show, err := a.GetShow(context.Background(), 169)
	require.NoError(t, err)
	assert.Equal(t, 2008, show.Year())
	assert.Equal(t, 9.2, *show.Rating.Average)
}
