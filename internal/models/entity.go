package models

import (
	"reflect"
	"strings"
	"time"
)

// Entity is implemented by every document kind we persist.
type Entity interface {
	GetObjectID() ObjectID
	SetObjectID(id ObjectID)
	Touch(now time.Time)
}

// Base carries the storage-assigned fields shared by all entities.
type Base struct {
	ID        ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (b *Base) GetObjectID() ObjectID {
	return b.ID
}

func (b *Base) SetObjectID(id ObjectID) {
	b.ID = id
}

func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// KindOf returns the entity kind of v: its type name, lowercased.
// The kind doubles as the collection name.
func KindOf(v any) string {
	return KindOfType(reflect.TypeOf(v))
}

func KindOfType(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

// KindFor is KindOf for a type parameter.
func KindFor[E any]() string {
	return KindOfType(reflect.TypeFor[E]())
}
