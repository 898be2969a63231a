package models

// AudioDreamText is stored as the text of dreams submitted as audio.
const AudioDreamText = "[audio input]"

type Dream struct {
	Base          `bson:",inline"`
	UserEmail     *string   `bson:"user_email" json:"user_email" validate:"omitempty,email"`
	Text          string    `bson:"text" json:"text"`
	Language      string    `bson:"language" json:"language" default:"es"`
	Analysis      *Analysis `bson:"analysis,omitempty" json:"analysis"`
	AudioFilename *string   `bson:"audio_filename" json:"audio_filename"`
	Tags          []string  `bson:"tags" json:"tags" default:"[]"`
}

// Analysis is the canned interpretation attached to a dream.
// Summary and Recommendations are keyed by locale; the Localized fields
// hold the entry picked for the dream's language.
type Analysis struct {
	Summary                  map[string]string   `bson:"summary" json:"summary"`
	Themes                   []string            `bson:"themes" json:"themes"`
	Recommendations          map[string][]string `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	Language                 string              `bson:"language" json:"language"`
	LocalizedSummary         string              `bson:"localized_summary" json:"localized_summary"`
	LocalizedRecommendations []string            `bson:"localized_recommendations,omitempty" json:"localized_recommendations,omitempty"`
}
