package usecase

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/audiostore"
)

type fakeRepo[E any, P interface {
	*E
	models.Entity
}] struct {
	inserted []P
	filters  []map[string]any
	found    []E
	err      error
}

func (f *fakeRepo[E, P]) Insert(_ context.Context, entity P) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, entity)
	id := models.ObjectID(fmt.Sprintf("%024x", len(f.inserted)))
	entity.SetObjectID(id)
	return id.String(), nil
}

func (f *fakeRepo[E, P]) Find(_ context.Context, filter map[string]any) ([]E, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.found, nil
}

type fakeAudioStore struct {
	objects []audiostore.Object
	err     error
}

func (f *fakeAudioStore) Put(_ context.Context, obj audiostore.Object) (string, error) {
	f.objects = append(f.objects, obj)
	if f.err != nil {
		return "", f.err
	}
	return "s3://bucket/" + obj.Filename, nil
}
