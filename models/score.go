package models

// ScoreEntry is one leaderboard submission. Entries are immutable once
// written; the store is an append-only log and never deletes history.
type ScoreEntry struct {
	PlayerID        string `json:"playerId"`
	PlayerName      string `json:"playerName"`
	Mood            string `json:"mood"`
	UserGuess       string `json:"userGuess"`
	MatchPercentage int    `json:"matchPercentage"`
	Date            string `json:"date"` // YYYY-MM-DD
	Timestamp       int64  `json:"timestamp"`
}
