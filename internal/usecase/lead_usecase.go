package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
)

type leadUsecase struct {
	leadRepo mongodb.LeadRepository
}

func NewLeadUsecase(leadRepo mongodb.LeadRepository) LeadUsecase {
	return &leadUsecase{
		leadRepo: leadRepo,
	}
}

func (uc *leadUsecase) CaptureLead(ctx context.Context, req models.LeadRequest) (string, error) {
	lead := &models.Lead{
		Email:    req.Email,
		Name:     req.Name,
		Language: req.Language,
		Source:   req.Source,
	}

	id, err := uc.leadRepo.Insert(ctx, lead)
	if err != nil {
		return "", fmt.Errorf("insert lead: %w", err)
	}

	log.Infow(ctx, "lead captured", "lead_id", id, "source", lead.Source, "language", lead.Language)
	return id, nil
}
