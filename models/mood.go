package models

// Mood is one of the five fixed daily categories the game asks the player to match.
type Mood struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
}

// AvailableMoods is the fixed mood catalog. Order matters: the mood of the day
// is picked by day-of-year modulo the catalog length, so every player sees the
// same mood on the same date.
var AvailableMoods = []Mood{
	{
		ID:          "chill",
		Name:        "Chill",
		Description: "Relaxed, calm, perfect for unwinding",
		Emoji:       "😌",
		Color:       "#a8d8ea",
	},
	{
		ID:          "energetic",
		Name:        "Energetic",
		Description: "Full of energy, made for moving",
		Emoji:       "⚡",
		Color:       "#ffd93d",
	},
	{
		ID:          "melancholic",
		Name:        "Melancholic",
		Description: "Reflective, deep, emotional",
		Emoji:       "🌙",
		Color:       "#6c5ce7",
	},
	{
		ID:          "joyful",
		Name:        "Joyful",
		Description: "Happy, fun, upbeat",
		Emoji:       "🎉",
		Color:       "#ff7675",
	},
	{
		ID:          "focus",
		Name:        "Focus",
		Description: "Concentrated, productive, determined",
		Emoji:       "🎯",
		Color:       "#00b894",
	},
}

// MoodByID looks up a mood in the catalog. ok is false for unknown IDs.
func MoodByID(id string) (Mood, bool) {
	for _, m := range AvailableMoods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}
