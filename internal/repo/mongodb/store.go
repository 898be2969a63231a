package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/schema"
)

// Store persists entities into one collection per entity kind. A Store
// without a database is valid: every operation then fails with
// models.ErrStorageUnavailable.
type Store struct {
	db  *DB
	now func() time.Time
}

func NewStore(db *DB) *Store {
	return &Store{
		db:  db,
		now: time.Now,
	}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil && s.db.Database != nil
}

// DB exposes the underlying handle for diagnostics; nil when unavailable.
func (s *Store) DB() *DB {
	if !s.Available() {
		return nil
	}
	return s.db
}

func (s *Store) collection(kind string) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, models.ErrStorageUnavailable
	}
	if kind == "" {
		return nil, errors.New("empty entity kind")
	}
	return s.db.Database.Collection(kind), nil
}

// Create validates entity, assigns its identifier and inserts it into the
// collection named kind. It returns the identifier as a hex string.
func (s *Store) Create(ctx context.Context, kind string, entity models.Entity) (string, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return "", err
	}
	if id := entity.GetObjectID(); id != "" {
		return "", fmt.Errorf("create %s: entity already has id %s", kind, id)
	}

	if err := schema.ApplyDefaults(entity); err != nil {
		return "", fmt.Errorf("apply defaults: %w", err)
	}
	if err := schema.Validate(entity); err != nil {
		return "", err
	}

	id := models.NewObjectID()
	entity.SetObjectID(id)
	entity.Touch(s.now())

	if _, err := coll.InsertOne(ctx, entity); err != nil {
		entity.SetObjectID("")
		if isUnavailable(err) {
			return "", fmt.Errorf("insert %s: %w: %w", kind, models.ErrStorageUnavailable, err)
		}
		return "", fmt.Errorf("insert %s: %w: %w", kind, models.ErrStorageWrite, err)
	}

	return id.String(), nil
}

// Query decodes every document of kind matching all equality tests in
// filter into results, oldest first.
func (s *Store) Query(ctx context.Context, kind string, filter map[string]any, results any) error {
	coll, err := s.collection(kind)
	if err != nil {
		return err
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	// ObjectIDs grow with insertion time, so sorting by _id keeps insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		if isUnavailable(err) {
			return fmt.Errorf("find %s: %w: %w", kind, models.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("find %s: %w", kind, err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("cursor all: %w", err)
	}
	return nil
}

// indexedKinds are the kinds looked up by user_email.
var indexedKinds = []string{
	models.KindFor[models.Dream](),
	models.KindFor[models.QuizAnswer](),
	models.KindFor[models.Report](),
}

// EnsureIndexes creates the user_email lookup indexes, one collection per
// goroutine. Failures are logged and skipped so a read-only or missing
// database does not block startup.
func (s *Store) EnsureIndexes(ctx context.Context) {
	if !s.Available() {
		log.Infow(ctx, "skip index creation", "error", models.ErrStorageUnavailable)
		return
	}

	var group errgroup.Group
	for _, kind := range indexedKinds {
		group.Go(func() error {
			coll, err := s.collection(kind)
			if err != nil {
				return err
			}
			model := mongo.IndexModel{
				Keys:    bson.D{{Key: "user_email", Value: 1}},
				Options: options.Index().SetName("user_email_1"),
			}
			if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
				log.Errorw(ctx, "create index failed", "collection", kind, "error", err)
			}
			return nil
		})
	}
	_ = group.Wait()
}

// isUnavailable reports whether err means the server could not be reached,
// as opposed to the server rejecting the operation.
func isUnavailable(err error) bool {
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) ||
		mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err)
}
