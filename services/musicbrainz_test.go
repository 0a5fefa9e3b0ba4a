package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestMusicBrainzClient(srv *httptest.Server) *MusicBrainzClient {
	return &MusicBrainzClient{
		BaseURL:    srv.URL,
		UserAgent:  "music-guess-test/1.0",
		HTTPClient: srv.Client(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func TestSearchRecordingsQueryShape(t *testing.T) {
	var gotQuery, gotFmt, gotLimit, gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotFmt = r.URL.Query().Get("fmt")
		gotLimit = r.URL.Query().Get("limit")
		gotUA = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recordings":[
			{"id":"mbid-1","title":"First","artist-credit":[{"name":"Radiohead"}]},
			{"id":"mbid-2","title":"Second"}
		]}`))
	}))
	defer srv.Close()

	client := newTestMusicBrainzClient(srv)
	recordings := client.SearchRecordings(context.Background(), "Radiohead", "No Surprises")

	assert.Equal(t, `artist:"Radiohead" recording:"No Surprises"`, gotQuery)
	assert.Equal(t, "json", gotFmt)
	assert.Equal(t, "10", gotLimit)
	assert.Equal(t, "music-guess-test/1.0", gotUA)

	// Candidates come back in the service's relevance order, no re-ranking
	require.Len(t, recordings, 2)
	assert.Equal(t, "mbid-1", recordings[0].ID)
	assert.Equal(t, "First", recordings[0].Title)
	assert.Equal(t, "mbid-2", recordings[1].ID)
}

func TestSearchRecordingsFailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}},
		{"zero results", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"recordings":[]}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestMusicBrainzClient(srv)
			recordings := client.SearchRecordings(context.Background(), "Some Artist", "Some Song")
			assert.Empty(t, recordings)
		})
	}
}

func TestSearchRecordingsUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestMusicBrainzClient(srv)
	srv.Close()

	recordings := client.SearchRecordings(context.Background(), "Artist", "Song")
	assert.Empty(t, recordings)
}
