package usecase

import (
	"context"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/audiostore"
)

type LeadUsecase interface {
	CaptureLead(ctx context.Context, req models.LeadRequest) (string, error)
}

type DreamUsecase interface {
	AnalyzeText(ctx context.Context, req models.DreamRequest) (string, *models.Analysis, error)
	AnalyzeAudio(ctx context.Context, req models.AudioDreamRequest, upload audiostore.Object) (string, *models.Analysis, error)
	History(ctx context.Context, email string) ([]models.Dream, error)
}

type QuizUsecase interface {
	SubmitQuiz(ctx context.Context, req models.QuizRequest) (string, error)
}

type ReportUsecase interface {
	QueueReport(ctx context.Context, req models.ReportRequest) (string, error)
}

type DiagnosticsUsecase interface {
	Diagnose(ctx context.Context) *models.Diagnostics
}
