package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"music-guess-backend/utils"

	"golang.org/x/time/rate"
)

const defaultMusicBrainzURL = "https://musicbrainz.org/ws/2"

// defaultUserAgent identifies the app as MusicBrainz etiquette requires.
const defaultUserAgent = "MusicGuessGame/1.0 ( https://github.com/user/music-guess )"

// Recording is one candidate returned by the MusicBrainz recording search.
type Recording struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ArtistCredit []struct {
		Name string `json:"name"`
	} `json:"artist-credit"`
}

// MusicBrainzClient searches the MusicBrainz recording index. It never
// returns errors to callers: any upstream failure is logged and reported as
// zero candidates so the match pipeline can degrade to the fallback score.
type MusicBrainzClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewMusicBrainzClient() *MusicBrainzClient {
	baseURL := os.Getenv("MUSICBRAINZ_URL")
	if baseURL == "" {
		baseURL = defaultMusicBrainzURL
	}
	userAgent := os.Getenv("MB_USER_AGENT")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &MusicBrainzClient{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: utils.NewHTTPClient(),
		// 1 req/s per MusicBrainz guidelines for unauthenticated clients
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// SearchRecordings queries up to 10 recordings matching the exact artist and
// title phrases, in the relevance order MusicBrainz returns them. Failures
// (non-2xx, network error, malformed body) and empty result sets both yield
// an empty slice.
func (c *MusicBrainzClient) SearchRecordings(ctx context.Context, artist, title string) []Recording {
	if err := c.limiter.Wait(ctx); err != nil {
		log.Printf("❌ MusicBrainz rate limiter wait aborted: %v", err)
		return nil
	}

	query := fmt.Sprintf("artist:%q recording:%q", artist, title)
	searchURL := fmt.Sprintf("%s/recording/?query=%s&fmt=json&limit=10", c.BaseURL, url.QueryEscape(query))

	log.Printf("🔍 Searching MusicBrainz: %s - %s", artist, title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		log.Printf("❌ MusicBrainz request build failed: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("❌ MusicBrainz request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ MusicBrainz error: %d %s", resp.StatusCode, resp.Status)
		return nil
	}

	var payload struct {
		Recordings []Recording `json:"recordings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("❌ MusicBrainz response decode failed: %v", err)
		return nil
	}

	log.Printf("📊 Found %d results", len(payload.Recordings))
	return payload.Recordings
}
