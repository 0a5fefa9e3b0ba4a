package services

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"music-guess-backend/models"
	"music-guess-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ErrInvalidSubmission marks a leaderboard payload missing required fields.
var ErrInvalidSubmission = errors.New("invalid leaderboard payload")

// ScoreSubmission is the wire shape of a score submission. Numeric fields are
// pointers so a missing field can be told apart from a zero value.
type ScoreSubmission struct {
	PlayerID        string   `json:"playerId"`
	PlayerName      string   `json:"playerName"`
	Mood            string   `json:"mood"`
	UserGuess       string   `json:"userGuess"`
	MatchPercentage *float64 `json:"matchPercentage"`
	Date            string   `json:"date"`
	Timestamp       *int64   `json:"timestamp"`
}

// LeaderboardService keeps the append-only score log in a single JSON file.
// Writes go through a temp-file-plus-rename so a crash mid-write can never
// corrupt the file, and a process-wide mutex serializes read-modify-write so
// concurrent submissions cannot drop each other. Historical entries are never
// deleted or edited; every ranking is recomputed from the full history.
type LeaderboardService struct {
	FilePath string
	mu       sync.Mutex
}

func NewLeaderboardService(filePath string) *LeaderboardService {
	return &LeaderboardService{FilePath: filePath}
}

// EnsureFile creates an empty leaderboard file on first run.
func (s *LeaderboardService) EnsureFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.FilePath); err == nil {
		return nil
	}
	if err := s.save([]models.ScoreEntry{}); err != nil {
		return err
	}
	log.Printf("✅ Leaderboard file created: %s", s.FilePath)
	return nil
}

// load reads the full collection. A missing file or unparseable content is an
// empty collection, never an error.
func (s *LeaderboardService) load() []models.ScoreEntry {
	content, err := os.ReadFile(s.FilePath)
	if err != nil {
		return []models.ScoreEntry{}
	}

	var entries []models.ScoreEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		log.Printf("⚠️ Leaderboard file unreadable, treating as empty: %v", err)
		return []models.ScoreEntry{}
	}
	return entries
}

func (s *LeaderboardService) save(entries []models.ScoreEntry) error {
	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(s.FilePath, content)
}

// Append validates and normalizes a submission, then persists the whole
// collection. matchPercentage is rounded and clamped to [0,100] before
// storage; a missing mood becomes "unknown".
func (s *LeaderboardService) Append(sub ScoreSubmission) (models.ScoreEntry, error) {
	if sub.PlayerID == "" || sub.PlayerName == "" || sub.UserGuess == "" || sub.Date == "" ||
		sub.MatchPercentage == nil || sub.Timestamp == nil {
		return models.ScoreEntry{}, ErrInvalidSubmission
	}

	mood := sub.Mood
	if mood == "" {
		mood = "unknown"
	}

	percentage := int(math.Round(*sub.MatchPercentage))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	entry := models.ScoreEntry{
		PlayerID:        sub.PlayerID,
		PlayerName:      sub.PlayerName,
		Mood:            mood,
		UserGuess:       sub.UserGuess,
		MatchPercentage: percentage,
		Date:            sub.Date,
		Timestamp:       *sub.Timestamp,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.load(), entry)
	if err := s.save(entries); err != nil {
		return models.ScoreEntry{}, err
	}
	return entry, nil
}

// Query returns the best-per-player ranking over the full history: each
// player's highest score (ties broken by latest timestamp), sorted by score
// descending then timestamp descending, at most limit entries.
func (s *LeaderboardService) Query(limit int) []models.ScoreEntry {
	s.mu.Lock()
	entries := s.load()
	s.mu.Unlock()

	return rankBestPerPlayer(entries, clampLimit(limit))
}

// QueryDaily is Query restricted to entries submitted for one calendar date.
func (s *LeaderboardService) QueryDaily(date string, limit int) []models.ScoreEntry {
	s.mu.Lock()
	entries := s.load()
	s.mu.Unlock()

	var todays []models.ScoreEntry
	for _, e := range entries {
		if e.Date == date {
			todays = append(todays, e)
		}
	}
	return rankBestPerPlayer(todays, clampLimit(limit))
}

// Snapshot returns the raw on-disk collection for backup jobs.
func (s *LeaderboardService) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.ReadFile(s.FilePath)
}

func rankBestPerPlayer(entries []models.ScoreEntry, limit int) []models.ScoreEntry {
	bestByPlayer := make(map[string]models.ScoreEntry)
	for _, e := range entries {
		best, ok := bestByPlayer[e.PlayerID]
		if !ok || e.MatchPercentage > best.MatchPercentage ||
			(e.MatchPercentage == best.MatchPercentage && e.Timestamp > best.Timestamp) {
			bestByPlayer[e.PlayerID] = e
		}
	}

	ranking := make([]models.ScoreEntry, 0, len(bestByPlayer))
	for _, e := range bestByPlayer {
		ranking = append(ranking, e)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].MatchPercentage != ranking[j].MatchPercentage {
			return ranking[i].MatchPercentage > ranking[j].MatchPercentage
		}
		return ranking[i].Timestamp > ranking[j].Timestamp
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 500 {
		return 500
	}
	return limit
}

// SubmitScore handles POST /api/leaderboard
func (s *LeaderboardService) SubmitScore(c *fiber.Ctx) error {
	var sub ScoreSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid leaderboard payload",
		})
	}

	sub.PlayerID = strings.TrimSpace(sub.PlayerID)
	sub.PlayerName = strings.TrimSpace(sub.PlayerName)

	entry, err := s.Append(sub)
	if err != nil {
		if errors.Is(err, ErrInvalidSubmission) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid leaderboard payload",
			})
		}
		log.Printf("❌ Failed to save leaderboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save leaderboard",
		})
	}

	log.Printf("🏆 Score saved: %s (%s) %d%% on %s", entry.PlayerName, entry.PlayerID, entry.MatchPercentage, entry.Date)
	return c.JSON(fiber.Map{"success": true})
}

// GetLeaderboard handles GET /api/leaderboard
func (s *LeaderboardService) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	ranking := s.Query(limit)

	return c.JSON(fiber.Map{
		"count":       len(ranking),
		"leaderboard": ranking,
	})
}

// GetDailyLeaderboard handles GET /api/leaderboard/daily
func (s *LeaderboardService) GetDailyLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	date := Today()
	ranking := s.QueryDaily(date, limit)

	return c.JSON(fiber.Map{
		"count":       len(ranking),
		"date":        date,
		"leaderboard": ranking,
	})
}
