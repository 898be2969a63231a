package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID keeps document identifiers as hex strings on our side
// while storing them as native ObjectIDs in mongo.
//
//nolint:recvcheck // use pointer receiver to match bson.UnmarshalValue
type ObjectID string

func NewObjectID() ObjectID {
	return ObjectID(primitive.NewObjectID().Hex())
}

func (o ObjectID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	p, err := primitive.ObjectIDFromHex(string(o))
	if err != nil {
		return bson.TypeNull, nil, err
	}
	return bson.MarshalValue(p)
}

func (o *ObjectID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var p primitive.ObjectID
	err := bson.UnmarshalValue(t, data, &p)
	if err != nil {
		return err
	}
	*o = ObjectID(p.Hex())
	return nil
}

// IsZero lets bson honour omitempty for unset identifiers.
func (o ObjectID) IsZero() bool {
	return o == ""
}

func (o ObjectID) String() string {
	return string(o)
}
