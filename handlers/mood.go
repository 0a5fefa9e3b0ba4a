// handlers/mood.go
package handlers

import (
	"music-guess-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMoodRoutes(app *fiber.App, moodService *services.MoodService) {
	app.Get("/api/mood/today", moodService.GetTodayMood)
}
