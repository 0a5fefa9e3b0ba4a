// handlers/leaderboard.go
package handlers

import (
	"music-guess-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Post("/api/leaderboard", leaderboardService.SubmitScore)
	app.Get("/api/leaderboard", leaderboardService.GetLeaderboard)
	app.Get("/api/leaderboard/daily", leaderboardService.GetDailyLeaderboard)
}
