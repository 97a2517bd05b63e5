package repository

import (
	"context"
	"errors"
	"fmt"

	"community-board/internal/domain/user"
	"community-board/pkg/database"
	board_errors "community-board/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{coll: db.Collection(database.UsersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if isDuplicateKey(err) {
			return board_errors.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = insertedObjectID(res, u.ID)
	return nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) ([]user.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{{Key: "username", Value: username}})
	if err != nil {
		return nil, fmt.Errorf("find users by username: %w", err)
	}
	users := []user.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (user.User, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "username", Value: username}},
	}}}

	var u user.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, board_errors.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by email or username: %w", err)
	}
	return u, nil
}
