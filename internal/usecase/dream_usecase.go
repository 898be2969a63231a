package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/nguyentranbao-ct/dream-api/internal/analysis"
	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/audiostore"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/dream-api/pkg/util"
)

type dreamUsecase struct {
	dreamRepo  mongodb.DreamRepository
	audioStore audiostore.Store
}

func NewDreamUsecase(dreamRepo mongodb.DreamRepository, audioStore audiostore.Store) DreamUsecase {
	return &dreamUsecase{
		dreamRepo:  dreamRepo,
		audioStore: audioStore,
	}
}

func (uc *dreamUsecase) AnalyzeText(ctx context.Context, req models.DreamRequest) (string, *models.Analysis, error) {
	text := util.Val(req.Text)
	insights := analysis.TextAnalysis(text, req.Language)

	dream := &models.Dream{
		UserEmail: req.UserEmail,
		Text:      text,
		Language:  req.Language,
		Analysis:  insights,
		Tags:      insights.Themes,
	}

	id, err := uc.dreamRepo.Insert(ctx, dream)
	if err != nil {
		return "", nil, fmt.Errorf("insert dream: %w", err)
	}

	log.Infow(ctx, "dream analyzed", "dream_id", id, "language", dream.Language, "tags", dream.Tags)
	return id, insights, nil
}

// AnalyzeAudio records an audio dream. The recording is not transcribed:
// the dream gets placeholder text, a fixed analysis and the "audio" tag.
// The recording is uploaded only once the dream is stored.
func (uc *dreamUsecase) AnalyzeAudio(ctx context.Context, req models.AudioDreamRequest, upload audiostore.Object) (string, *models.Analysis, error) {
	insights := analysis.AudioAnalysis(req.Language)

	dream := &models.Dream{
		UserEmail:     req.UserEmail,
		Text:          models.AudioDreamText,
		Language:      req.Language,
		Analysis:      insights,
		AudioFilename: util.Ptr(upload.Filename),
		Tags:          []string{analysis.TagAudio},
	}

	id, err := uc.dreamRepo.Insert(ctx, dream)
	if err != nil {
		return "", nil, fmt.Errorf("insert audio dream: %w", err)
	}

	location, err := uc.audioStore.Put(ctx, upload)
	if err != nil {
		// the dream is still worth keeping without its recording
		log.Errorw(ctx, "failed to store audio", "dream_id", id, "filename", upload.Filename, "error", err)
	}

	log.Infow(ctx, "audio dream recorded", "dream_id", id, "filename", upload.Filename, "size", upload.Size, "location", location)
	return id, insights, nil
}

func (uc *dreamUsecase) History(ctx context.Context, email string) ([]models.Dream, error) {
	dreams, err := uc.dreamRepo.Find(ctx, map[string]any{"user_email": email})
	if err != nil {
		return nil, fmt.Errorf("find dreams: %w", err)
	}
	return dreams, nil
}
