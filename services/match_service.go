package services

import (
	"context"
	"log"
	"math"
	"strings"

	"music-guess-backend/models"

	"github.com/gofiber/fiber/v2"
)

// MatchService orchestrates the scoring pipeline: resolve candidate
// recordings, try each one for acoustic features, map features to mood
// scores. Any total failure degrades to the deterministic fallback score so a
// syntactically valid request always gets an answer.
type MatchService struct {
	MusicBrainz    *MusicBrainzClient
	AcousticBrainz *AcousticBrainzClient
}

func NewMatchService(mb *MusicBrainzClient, ab *AcousticBrainzClient) *MatchService {
	return &MatchService{
		MusicBrainz:    mb,
		AcousticBrainz: ab,
	}
}

type matchRequest struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	MoodID string `json:"moodId"`
}

type checkRequest struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

type debugRequest struct {
	MBID string `json:"mbid"`
}

// Match runs the full pipeline for one guess.
func (s *MatchService) Match(ctx context.Context, artist, title, moodID string) models.MatchResult {
	if artist == "" || title == "" || moodID == "" {
		return models.MatchResult{
			MatchPercentage: 0,
			Source:          models.SourceFallback,
			Message:         "Invalid parameters",
		}
	}

	recording, features := s.findRecordingWithFeatures(ctx, artist, title)
	if recording == nil {
		log.Printf("⚠️ Using fallback score (no recording with features found)")
		return models.MatchResult{
			MatchPercentage: FallbackScore(moodID, Today()),
			Source:          models.SourceFallback,
			Message:         "Song not found in the acoustic database. Using the deterministic score of the day.",
		}
	}

	scores := MoodScores(*features)
	targetScore := scores[moodID] // unknown mood scores 0
	matchPercentage := int(math.Round(targetScore * 100))

	log.Printf("🎯 Mood scores: %v", scores)
	log.Printf("✅ Final match: %d%% (%s)", matchPercentage, moodID)

	return models.MatchResult{
		MatchPercentage: matchPercentage,
		Source:          models.SourceAcousticBrainz,
		Features:        features,
		RecordingID:     recording.ID,
	}
}

// findRecordingWithFeatures tries the resolver's candidates in order and
// stops at the first one whose high-level lookup yields a defined energy.
// This is a short-circuiting search, not a fan-out: each lookup completes
// before the next is issued, to avoid burning rate-limited calls once a
// usable candidate is found.
func (s *MatchService) findRecordingWithFeatures(ctx context.Context, artist, title string) (*Recording, *models.AcousticFeatures) {
	recordings := s.MusicBrainz.SearchRecordings(ctx, artist, title)
	if len(recordings) == 0 {
		log.Printf("⚠️ No recordings found for: %s - %s", artist, title)
		return nil, nil
	}

	for i, recording := range recordings {
		log.Printf("🔄 Trying recording %d/%d: %q (ID: %s)", i+1, len(recordings), recording.Title, recording.ID)

		moods := s.AcousticBrainz.HighLevelMoods(ctx, recording.ID)
		if moods == nil {
			log.Printf("⚠️ Recording has no features available, trying next...")
			continue
		}

		features := MapMoodProbabilities(*moods)
		if features.Energy == nil {
			log.Printf("⚠️ Recording features lack energy, trying next...")
			continue
		}

		log.Printf("✅ Selected: %s (ID: %s)", recording.Title, recording.ID)
		return &recording, &features
	}

	log.Printf("❌ No recording has acoustic features available")
	return nil, nil
}

// MatchMusic handles POST /api/music/match
func (s *MatchService) MatchMusic(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	req.Artist = strings.TrimSpace(req.Artist)
	req.Title = strings.TrimSpace(req.Title)
	req.MoodID = strings.TrimSpace(req.MoodID)

	if req.Artist == "" || req.Title == "" || req.MoodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid parameters. Required: artist, title, moodId",
		})
	}

	log.Printf("🎮 New match request: artist=%q title=%q mood=%q", req.Artist, req.Title, req.MoodID)

	return c.JSON(s.Match(c.Context(), req.Artist, req.Title, req.MoodID))
}

// CheckMusic handles POST /api/music/check
func (s *MatchService) CheckMusic(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	req.Artist = strings.TrimSpace(req.Artist)
	req.Title = strings.TrimSpace(req.Title)

	if req.Artist == "" || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid parameters. Required: artist, title",
		})
	}

	log.Printf("🔍 Checking: %s - %s", req.Artist, req.Title)

	recording, features := s.findRecordingWithFeatures(c.Context(), req.Artist, req.Title)
	if recording == nil {
		return c.JSON(fiber.Map{
			"found":   false,
			"artist":  req.Artist,
			"title":   req.Title,
			"message": "Song not found with acoustic features available on AcousticBrainz",
		})
	}

	return c.JSON(fiber.Map{
		"found":          true,
		"artist":         req.Artist,
		"title":          req.Title,
		"musicbrainzId":  recording.ID,
		"recordingTitle": recording.Title,
		"features":       features,
	})
}

// DebugAcousticBrainz handles POST /api/debug/acousticbrainz
func (s *MatchService) DebugAcousticBrainz(c *fiber.Ctx) error {
	var req debugRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	if req.MBID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid parameter. Required: mbid",
		})
	}

	log.Printf("🔧 Testing AcousticBrainz directly with MBID: %s", req.MBID)

	moods := s.AcousticBrainz.HighLevelMoods(c.Context(), req.MBID)
	if moods == nil {
		return c.JSON(fiber.Map{
			"success": false,
			"mbid":    req.MBID,
			"message": "MBID not found or has no features on AcousticBrainz",
		})
	}

	features := MapMoodProbabilities(*moods)
	return c.JSON(fiber.Map{
		"success":  true,
		"mbid":     req.MBID,
		"features": features,
	})
}
