package models

// Report is a queued dream report. Nothing delivers it yet, so Delivered
// stays false.
type Report struct {
	Base      `bson:",inline"`
	UserEmail string  `bson:"user_email" json:"user_email" validate:"required,email"`
	DreamID   *string `bson:"dream_id" json:"dream_id"`
	Subject   string  `bson:"subject" json:"subject" validate:"required"`
	Content   string  `bson:"content" json:"content" validate:"required"`
	Language  string  `bson:"language" json:"language" default:"es"`
	Delivered bool    `bson:"delivered" json:"delivered"`
}
