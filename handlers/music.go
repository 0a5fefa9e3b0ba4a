// handlers/music.go
package handlers

import (
	"music-guess-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMusicRoutes(app *fiber.App, matchService *services.MatchService) {
	app.Post("/api/music/match", matchService.MatchMusic)
	app.Post("/api/music/check", matchService.CheckMusic)

	// Diagnostic route: query AcousticBrainz directly by MBID
	app.Post("/api/debug/acousticbrainz", matchService.DebugAcousticBrainz)
}
