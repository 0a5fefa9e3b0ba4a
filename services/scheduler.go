// services/scheduler.go
package services

import (
	"context"
	"log"
	"time"

	"music-guess-backend/utils"

	"github.com/go-co-op/gocron/v2"
)

// StartDailyScheduler runs the midnight jobs: announce the rotated mood of
// the day and push a dated leaderboard snapshot to the backup bucket.
// Both jobs are side-cars; they never touch the request-facing contract.
func (s *LeaderboardService) StartDailyScheduler(moods *MoodService) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every day at midnight UTC
	_, _ = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			now := time.Now().UTC()
			mood := moods.MoodOfTheDay(now)
			log.Printf("🌅 Mood of the day: %s %s (%s)", mood.Emoji, mood.Name, mood.ID)

			if !utils.BackupEnabled() {
				return
			}

			data, err := s.Snapshot()
			if err != nil {
				log.Printf("[Scheduler] Failed to read leaderboard for snapshot: %v", err)
				return
			}

			key := "leaderboard-" + now.Format("2006-01-02") + ".json"
			if err := utils.UploadBackup(context.Background(), key, data); err != nil {
				log.Printf("[Scheduler] Failed to upload snapshot %s: %v", key, err)
			} else {
				log.Printf("✅ Daily leaderboard snapshot uploaded: %s", key)
			}
		}),
	)
}
