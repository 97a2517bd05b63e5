package repository

import (
	"context"
	"fmt"
	"time"

	"community-board/internal/domain/question"
	"community-board/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoQuestionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewQuestionRepository(db *mongo.Database) QuestionRepository {
	// Free-form bodies may nest objects; decode them as maps so they serialize
	// back as JSON objects instead of ordered key/value pairs.
	opts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	return &MongoQuestionRepository{
		coll: db.Collection(database.QuestionsCollection, opts),
		now:  time.Now,
	}
}

func (r *MongoQuestionRepository) Create(ctx context.Context, q *question.Question) error {
	q.ID = primitive.NewObjectID()
	// BSON dates carry millisecond precision.
	q.CreatedAt = r.now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.InsertOne(ctx, toQuestionDocument(q))
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	q.ID = insertedObjectID(res, q.ID)
	return nil
}

func (r *MongoQuestionRepository) ListNewestFirst(ctx context.Context) ([]question.Question, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: question.FieldCreatedAt, Value: -1},
		{Key: question.FieldID, Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]question.Question, 0, len(docs))
	for _, doc := range docs {
		questions = append(questions, fromQuestionDocument(doc))
	}
	return questions, nil
}

func (r *MongoQuestionRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: question.FieldID, Value: oid}})
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func toQuestionDocument(q *question.Question) bson.M {
	doc := make(bson.M, len(q.Fields)+2)
	for k, v := range q.Fields {
		doc[k] = v
	}
	doc[question.FieldID] = q.ID
	doc[question.FieldCreatedAt] = q.CreatedAt
	return doc
}

func fromQuestionDocument(doc bson.M) question.Question {
	q := question.Question{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case question.FieldID:
			if oid, ok := v.(primitive.ObjectID); ok {
				q.ID = oid
			}
		case question.FieldCreatedAt:
			switch ts := v.(type) {
			case primitive.DateTime:
				q.CreatedAt = ts.Time().UTC()
			case time.Time:
				q.CreatedAt = ts.UTC()
			}
		default:
			q.Fields[k] = v
		}
	}
	return q
}
