package services

import (
	"time"

	"music-guess-backend/models"

	"github.com/gofiber/fiber/v2"
)

// MoodService rotates the mood of the day. The pick is deterministic per
// calendar date so every player sees the same mood on the same day.
type MoodService struct{}

func NewMoodService() *MoodService {
	return &MoodService{}
}

// MoodOfTheDay picks the mood for the given date by day-of-year rotation.
func (s *MoodService) MoodOfTheDay(t time.Time) models.Mood {
	index := t.YearDay() % len(models.AvailableMoods)
	return models.AvailableMoods[index]
}

// GetTodayMood handles GET /api/mood/today
func (s *MoodService) GetTodayMood(c *fiber.Ctx) error {
	now := time.Now().UTC()
	return c.JSON(fiber.Map{
		"date": now.Format("2006-01-02"),
		"mood": s.MoodOfTheDay(now),
	})
}
