package models

// Lead is a marketing contact captured from the landing pages.
type Lead struct {
	Base     `bson:",inline"`
	Email    string  `bson:"email" json:"email" validate:"required,email"`
	Name     *string `bson:"name" json:"name"`
	Language string  `bson:"language" json:"language" default:"es"`
	Source   string  `bson:"source" json:"source" default:"landing"`
}
