package workers

import (
	"context"
	"log"
	"os"
	"time"

	"music-guess-backend/services"
	"music-guess-backend/utils"
)

// LeaderboardBackupClient watches the leaderboard file and mirrors it to the
// backup bucket whenever it changes.
type LeaderboardBackupClient struct {
	Store    *services.LeaderboardService
	lastMod  time.Time
	lastSize int64
}

func NewLeaderboardBackupClient(store *services.LeaderboardService) *LeaderboardBackupClient {
	return &LeaderboardBackupClient{Store: store}
}

// syncIfChanged uploads the current leaderboard file when its mtime or size
// moved since the last successful sync.
func (c *LeaderboardBackupClient) syncIfChanged(ctx context.Context) {
	info, err := os.Stat(c.Store.FilePath)
	if err != nil {
		// File not created yet; nothing to back up
		return
	}

	if info.ModTime().Equal(c.lastMod) && info.Size() == c.lastSize {
		return
	}

	data, err := c.Store.Snapshot()
	if err != nil {
		log.Printf("[Backup] Failed to read leaderboard: %v", err)
		return
	}

	if err := utils.UploadBackup(ctx, "leaderboard-latest.json", data); err != nil {
		log.Printf("[Backup] Failed to upload leaderboard-latest.json: %v", err)
		return
	}

	c.lastMod = info.ModTime()
	c.lastSize = info.Size()
	log.Printf("✅ Leaderboard mirrored to backup storage (%d bytes)", len(data))
}

// PollLeaderboard mirrors the leaderboard file to backup storage on a fixed
// interval until the context is cancelled.
func PollLeaderboard(ctx context.Context, client *LeaderboardBackupClient, pollInterval time.Duration) {
	if !utils.BackupEnabled() {
		log.Println("⚠️  Backup storage not configured — leaderboard mirror worker not started")
		return
	}

	log.Println("Starting leaderboard backup polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Leaderboard backup polling stopped")
			return
		case <-ticker.C:
			client.syncIfChanged(ctx)
		}
	}
}
