package models

type QuizAnswer struct {
	Base      `bson:",inline"`
	UserEmail string            `bson:"user_email" json:"user_email" validate:"required,email"`
	Answers   map[string]string `bson:"answers" json:"answers" validate:"required"`
	Score     *int              `bson:"score" json:"score"`
}
