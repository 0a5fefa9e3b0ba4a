package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"music-guess-backend/handlers"
	"music-guess-backend/middleware"
	"music-guess-backend/services"
	"music-guess-backend/utils"
	"music-guess-backend/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "music-guess-backend",
	})

	app.Use(middleware.RequestLogger())

	// CORS: the front end origin comes from the environment, default wide
	// open like the original deployment
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		log.Println("⚠️  FRONTEND_ORIGIN environment variable not set, allowing all origins")
		frontendOrigin = "*"
	}
	origins := strings.Split(frontendOrigin, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	leaderboardFile := os.Getenv("LEADERBOARD_FILE")
	if leaderboardFile == "" {
		leaderboardFile = "data/leaderboard.json"
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize backup storage:", err)
	}

	musicBrainz := services.NewMusicBrainzClient()
	acousticBrainz := services.NewAcousticBrainzClient()
	matchService := services.NewMatchService(musicBrainz, acousticBrainz)
	leaderboardService := services.NewLeaderboardService(leaderboardFile)
	moodService := services.NewMoodService()

	if err := leaderboardService.EnsureFile(); err != nil {
		log.Fatal("failed to create leaderboard file:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backupClient := workers.NewLeaderboardBackupClient(leaderboardService)
	go workers.PollLeaderboard(ctx, backupClient, 60*time.Second)

	leaderboardService.StartDailyScheduler(moodService)

	handlers.SetupMusicRoutes(app, matchService)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)
	handlers.SetupMoodRoutes(app, moodService)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("🎵 Music Guess Backend running on http://localhost:%s", port)
	log.Printf("📍 Endpoint: POST http://localhost:%s/api/music/match", port)
	log.Printf("🔍 Check:    POST http://localhost:%s/api/music/check", port)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
