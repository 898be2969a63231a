package mongodb

import (
	"context"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

// Insert stores entity in the collection derived from its type.
func Insert(ctx context.Context, s *Store, entity models.Entity) (string, error) {
	return s.Create(ctx, models.KindOf(entity), entity)
}

// Find decodes every document of E's kind that matches filter.
func Find[E any](ctx context.Context, s *Store, filter map[string]any) ([]E, error) {
	entities := make([]E, 0)
	if err := s.Query(ctx, models.KindFor[E](), filter, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Repository is the typed view of one entity kind.
type Repository[E any, P interface {
	*E
	models.Entity
}] interface {
	Insert(ctx context.Context, entity P) (string, error)
	Find(ctx context.Context, filter map[string]any) ([]E, error)
}

type repository[E any, P interface {
	*E
	models.Entity
}] struct {
	store *Store
}

func NewRepository[E any, P interface {
	*E
	models.Entity
}](store *Store) Repository[E, P] {
	return &repository[E, P]{store: store}
}

func (r *repository[E, P]) Insert(ctx context.Context, entity P) (string, error) {
	return Insert(ctx, r.store, entity)
}

func (r *repository[E, P]) Find(ctx context.Context, filter map[string]any) ([]E, error) {
	return Find[E](ctx, r.store, filter)
}

type (
	LeadRepository       = Repository[models.Lead, *models.Lead]
	DreamRepository      = Repository[models.Dream, *models.Dream]
	QuizAnswerRepository = Repository[models.QuizAnswer, *models.QuizAnswer]
	ReportRepository     = Repository[models.Report, *models.Report]
)

func NewLeadRepository(store *Store) LeadRepository {
	return NewRepository[models.Lead, *models.Lead](store)
}

func NewDreamRepository(store *Store) DreamRepository {
	return NewRepository[models.Dream, *models.Dream](store)
}

func NewQuizAnswerRepository(store *Store) QuizAnswerRepository {
	return NewRepository[models.QuizAnswer, *models.QuizAnswer](store)
}

func NewReportRepository(store *Store) ReportRepository {
	return NewRepository[models.Report, *models.Report](store)
}
