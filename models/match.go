package models

// Match result sources.
const (
	SourceAcousticBrainz = "acousticbrainz"
	SourceFallback       = "fallback"
)

// HighLevelMoods holds the raw probabilities extracted from an AcousticBrainz
// high-level response. Fields missing from the response default to 0.
type HighLevelMoods struct {
	Happy        float64 `json:"happy"`
	Relaxed      float64 `json:"relaxed"`
	Sad          float64 `json:"sad"`
	Acoustic     float64 `json:"acoustic"`
	Aggressive   float64 `json:"aggressive"`
	Party        float64 `json:"party"`
	Instrumental float64 `json:"instrumental"`
}

// AcousticFeatures are the five derived scalars used for mood scoring.
// All fields are optional; a feature left nil counts as neutral (0.5) when
// scores are computed, not when the features are fetched.
type AcousticFeatures struct {
	Energy           *float64 `json:"energy,omitempty"`
	Danceability     *float64 `json:"danceability,omitempty"`
	Acousticness     *float64 `json:"acousticness,omitempty"`
	Instrumentalness *float64 `json:"instrumentalness,omitempty"`
	Valence          *float64 `json:"valence,omitempty"`
}

// MatchResult is the response of the match endpoint. Never persisted.
type MatchResult struct {
	MatchPercentage int               `json:"matchPercentage"`
	Source          string            `json:"source"`
	Features        *AcousticFeatures `json:"features,omitempty"`
	RecordingID     string            `json:"recordingId,omitempty"`
	Message         string            `json:"message,omitempty"`
}
