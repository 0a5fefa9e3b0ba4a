package services

import (
	"testing"

	"music-guess-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 {
	return &v
}

func TestFallbackScoreDeterministic(t *testing.T) {
	tests := []struct {
		moodID string
		date   string
		want   int
	}{
		{"chill", "2024-01-15", 95},
		{"energetic", "2024-01-15", 79},
		{"focus", "2023-12-31", 44},
		{"joyful", "2024-06-01", 10},
		{"melancholic", "2024-02-29", 96},
	}

	for _, tt := range tests {
		t.Run(tt.moodID+"_"+tt.date, func(t *testing.T) {
			got := FallbackScore(tt.moodID, tt.date)
			require.Equal(t, tt.want, got)

			// Same inputs must always yield the same score
			for i := 0; i < 10; i++ {
				require.Equal(t, got, FallbackScore(tt.moodID, tt.date))
			}
		})
	}
}

func TestFallbackScoreRange(t *testing.T) {
	dates := []string{"2023-01-01", "2024-02-29", "2024-12-31", "2025-07-04"}
	for _, mood := range models.AvailableMoods {
		for _, date := range dates {
			score := FallbackScore(mood.ID, date)
			assert.GreaterOrEqual(t, score, 0)
			assert.Less(t, score, 100)
		}
	}
}

func TestFallbackScoreVariesByMood(t *testing.T) {
	// Not a hard guarantee of the hash, but these two must differ for the
	// documented reference date
	assert.NotEqual(t,
		FallbackScore("chill", "2024-01-15"),
		FallbackScore("energetic", "2024-01-15"))
}

func TestMapMoodProbabilities(t *testing.T) {
	features := MapMoodProbabilities(models.HighLevelMoods{
		Happy:        0.3,
		Acoustic:     0.7,
		Aggressive:   1.0,
		Party:        0.5,
		Instrumental: 0.9,
	})

	require.NotNil(t, features.Energy)
	require.NotNil(t, features.Danceability)
	require.NotNil(t, features.Acousticness)
	require.NotNil(t, features.Instrumentalness)
	require.NotNil(t, features.Valence)

	assert.InDelta(t, 0.6, *features.Energy, 1e-9) // party*0.8 + aggressive*0.2
	assert.InDelta(t, 0.5, *features.Danceability, 1e-9)
	assert.InDelta(t, 0.7, *features.Acousticness, 1e-9)
	assert.InDelta(t, 0.9, *features.Instrumentalness, 1e-9)
	assert.InDelta(t, 0.3, *features.Valence, 1e-9)
}

func TestMoodScoresClamped(t *testing.T) {
	scores := MoodScores(models.AcousticFeatures{
		Energy:           fptr(2),
		Danceability:     fptr(-1),
		Acousticness:     fptr(5),
		Instrumentalness: fptr(-3),
		Valence:          fptr(7),
	})

	require.Len(t, scores, 5)
	for moodID, score := range scores {
		assert.GreaterOrEqualf(t, score, 0.0, "mood %s below 0", moodID)
		assert.LessOrEqualf(t, score, 1.0, "mood %s above 1", moodID)
	}
}

func TestMoodScoresNeutralDefaults(t *testing.T) {
	// All features absent: every formula collapses to 0.5
	scores := MoodScores(models.AcousticFeatures{})

	for moodID, score := range scores {
		assert.InDeltaf(t, 0.5, score, 1e-9, "mood %s", moodID)
	}
}

func TestMoodScoresEnergetic(t *testing.T) {
	scores := MoodScores(models.AcousticFeatures{
		Energy:           fptr(0.9),
		Danceability:     fptr(0.8),
		Acousticness:     fptr(0.1),
		Instrumentalness: fptr(0.0),
		Valence:          fptr(0.1),
	})

	// energy*0.7 + danceability*0.3
	assert.InDelta(t, 0.87, scores["energetic"], 1e-9)
	// (1-valence)*0.6 + acousticness*0.4
	assert.InDelta(t, 0.58, scores["melancholic"], 1e-9)
	// acousticness*0.6 + (1-energy)*0.4
	assert.InDelta(t, 0.1, scores["chill"], 1e-9)
	// valence*0.7 + danceability*0.3
	assert.InDelta(t, 0.31, scores["joyful"], 1e-9)
	// instrumentalness*0.8 + (1-energy)*0.2
	assert.InDelta(t, 0.02, scores["focus"], 1e-9)
}
