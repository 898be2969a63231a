package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/nguyentranbao-ct/dream-api/internal/analysis"
	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/dream-api/pkg/util"
)

type reportUsecase struct {
	reportRepo mongodb.ReportRepository
}

func NewReportUsecase(reportRepo mongodb.ReportRepository) ReportUsecase {
	return &reportUsecase{
		reportRepo: reportRepo,
	}
}

// QueueReport persists an undelivered report. No email is sent.
func (uc *reportUsecase) QueueReport(ctx context.Context, req models.ReportRequest) (string, error) {
	subject, content := analysis.ReportText(req.Language)

	report := &models.Report{
		UserEmail: req.UserEmail,
		DreamID:   req.DreamID,
		Subject:   subject,
		Content:   content,
		Language:  req.Language,
		Delivered: false,
	}

	id, err := uc.reportRepo.Insert(ctx, report)
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}

	log.Infow(ctx, "report queued", "report_id", id, "dream_id", util.Val(report.DreamID), "language", report.Language)
	return id, nil
}
