package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"music-guess-backend/models"
	"music-guess-backend/utils"
)

const defaultAcousticBrainzURL = "https://acousticbrainz.org"

// AcousticBrainzClient fetches precomputed high-level descriptors for a
// recording. A nil result means "no usable data" and drives the candidate
// retry loop in the match service; the reason (404, missing block, network
// error) is only visible in logs, never in the response contract.
type AcousticBrainzClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func NewAcousticBrainzClient() *AcousticBrainzClient {
	baseURL := os.Getenv("ACOUSTICBRAINZ_URL")
	if baseURL == "" {
		baseURL = defaultAcousticBrainzURL
	}
	userAgent := os.Getenv("MB_USER_AGENT")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &AcousticBrainzClient{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: utils.NewHTTPClient(),
	}
}

// HighLevelMoods returns the mood probabilities for one MBID, or nil when the
// response is non-2xx, lacks the highlevel block, or the block is empty.
// Probability fields missing from a present block default to 0.
func (c *AcousticBrainzClient) HighLevelMoods(ctx context.Context, mbid string) *models.HighLevelMoods {
	lookupURL := fmt.Sprintf("%s/api/v1/%s/high-level", c.BaseURL, mbid)

	log.Printf("🎵 Fetching AcousticBrainz mood data for MBID: %s", mbid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		log.Printf("❌ AcousticBrainz request build failed: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("❌ AcousticBrainz request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 100))
		log.Printf("⚠️ AcousticBrainz %d: no data available (%s)", resp.StatusCode, string(body))
		return nil
	}

	var payload struct {
		HighLevel map[string]struct {
			Probability float64            `json:"probability"`
			All         map[string]float64 `json:"all"`
		} `json:"highlevel"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("❌ AcousticBrainz response decode failed: %v", err)
		return nil
	}

	if len(payload.HighLevel) == 0 {
		log.Printf("⚠️ No high-level data available for MBID %s", mbid)
		return nil
	}

	moods := &models.HighLevelMoods{
		Happy:        payload.HighLevel["mood_happy"].Probability,
		Relaxed:      payload.HighLevel["mood_relaxed"].Probability,
		Sad:          payload.HighLevel["mood_sad"].Probability,
		Acoustic:     payload.HighLevel["mood_acoustic"].Probability,
		Aggressive:   payload.HighLevel["mood_aggressive"].Probability,
		Party:        payload.HighLevel["mood_party"].Probability,
		Instrumental: payload.HighLevel["voice_instrumental"].All["instrumental"],
	}

	log.Printf("✅ High-level mood data: happy=%.3f relaxed=%.3f sad=%.3f acoustic=%.3f aggressive=%.3f party=%.3f instrumental=%.3f",
		moods.Happy, moods.Relaxed, moods.Sad, moods.Acoustic, moods.Aggressive, moods.Party, moods.Instrumental)

	return moods
}
