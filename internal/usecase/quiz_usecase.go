package usecase

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
)

type quizUsecase struct {
	quizRepo mongodb.QuizAnswerRepository
}

func NewQuizUsecase(quizRepo mongodb.QuizAnswerRepository) QuizUsecase {
	return &quizUsecase{
		quizRepo: quizRepo,
	}
}

// SubmitQuiz stores the answers as given. Scoring happens client side.
func (uc *quizUsecase) SubmitQuiz(ctx context.Context, req models.QuizRequest) (string, error) {
	answer := &models.QuizAnswer{
		UserEmail: req.UserEmail,
		Answers:   req.Answers,
		Score:     req.Score,
	}

	id, err := uc.quizRepo.Insert(ctx, answer)
	if err != nil {
		return "", fmt.Errorf("insert quiz answer: %w", err)
	}
	return id, nil
}
