package repository

import (
	"context"
	"fmt"

	"community-board/internal/domain/question"
	"community-board/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	IndexUsersUsername      = "uniq_users_username"
	IndexUsersEmail         = "uniq_users_email"
	IndexQuestionsCreatedAt = "idx_questions_created_at"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

// Registration checks uniqueness before inserting, which two concurrent
// requests can both pass. The unique indexes close that gap at the store; they
// are installed by the migrate tool, never implicitly by the API.
func indexSpecs() []indexSpec {
	return []indexSpec{
		{
			collection: database.UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetName(IndexUsersUsername).SetUnique(true),
			},
		},
		{
			collection: database.UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(IndexUsersEmail).SetUnique(true),
			},
		},
		{
			collection: database.QuestionsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: question.FieldCreatedAt, Value: -1}, {Key: question.FieldID, Value: -1}},
				Options: options.Index().SetName(IndexQuestionsCreatedAt),
			},
		},
	}
}

// EnsureIndexes creates the optional indexes. Creating an index that already
// exists with the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	var created []string
	for _, spec := range indexSpecs() {
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			return created, fmt.Errorf("failed to create index on %s: %w", spec.collection, err)
		}
		created = append(created, name)
	}
	return created, nil
}

// DropIndexes removes the indexes created by EnsureIndexes.
func DropIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range indexSpecs() {
		name := *spec.model.Options.Name
		if _, err := db.Collection(spec.collection).Indexes().DropOne(ctx, name); err != nil {
			return fmt.Errorf("failed to drop index %s: %w", name, err)
		}
	}
	return nil
}

// Truncate deletes every document of both collections.
func Truncate(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{database.UsersCollection, database.QuestionsCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", name, err)
		}
	}
	return nil
}

// CollectionCounts reports the document count of both collections.
func CollectionCounts(ctx context.Context, db *mongo.Database) (map[string]int64, error) {
	counts := make(map[string]int64, 2)
	for _, name := range []string{database.UsersCollection, database.QuestionsCollection} {
		n, err := db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return counts, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
