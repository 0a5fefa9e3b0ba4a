package services

import (
	"time"

	"music-guess-backend/models"
)

// MapMoodProbabilities converts AcousticBrainz high-level mood probabilities
// into the five acoustic features the game scores against. The weighting is a
// fixed design constant, not configuration.
func MapMoodProbabilities(m models.HighLevelMoods) models.AcousticFeatures {
	energy := m.Party*0.8 + m.Aggressive*0.2
	danceability := m.Party
	acousticness := m.Acoustic
	instrumentalness := m.Instrumental
	valence := m.Happy

	return models.AcousticFeatures{
		Energy:           &energy,
		Danceability:     &danceability,
		Acousticness:     &acousticness,
		Instrumentalness: &instrumentalness,
		Valence:          &valence,
	}
}

// MoodScores computes a score in [0,1] for every mood in the catalog.
// Features absent from the input count as neutral (0.5).
func MoodScores(f models.AcousticFeatures) map[string]float64 {
	energy := featureOrNeutral(f.Energy)
	danceability := featureOrNeutral(f.Danceability)
	acousticness := featureOrNeutral(f.Acousticness)
	instrumentalness := featureOrNeutral(f.Instrumentalness)
	valence := featureOrNeutral(f.Valence)

	return map[string]float64{
		"chill":       clampScore(acousticness*0.6 + (1-energy)*0.4),
		"energetic":   clampScore(energy*0.7 + danceability*0.3),
		"melancholic": clampScore((1-valence)*0.6 + acousticness*0.4),
		"joyful":      clampScore(valence*0.7 + danceability*0.3),
		"focus":       clampScore(instrumentalness*0.8 + (1-energy)*0.2),
	}
}

// FallbackScore derives a deterministic score in [0,100) from the mood and the
// calendar date. Same mood + same date always gives the same number for every
// player; this is the only scoring path when no acoustic data is available.
// The hash is the classic 32-bit polynomial rolling hash (hash*31 + char),
// wrapped to the signed 32-bit range at every step.
func FallbackScore(moodID, date string) int {
	combined := moodID + "|" + date

	var hash int32
	for _, ch := range combined {
		hash = hash*31 + int32(ch)
	}

	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % 100)
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func featureOrNeutral(v *float64) float64 {
	if v == nil {
		return 0.5
	}
	return *v
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
