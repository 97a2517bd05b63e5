package repository

import (
	"fmt"

	board_errors "community-board/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", board_errors.ErrInvalidInput, id)
	}
	return oid, nil
}

// insertedObjectID extracts the id the driver reports for an insert.
func insertedObjectID(res *mongo.InsertOneResult, fallback primitive.ObjectID) primitive.ObjectID {
	if res == nil {
		return fallback
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid
	}
	return fallback
}
