package repository

import (
	"context"

	"community-board/internal/domain/question"
	"community-board/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByUsername(ctx context.Context, username string) ([]user.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (user.User, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, q *question.Question) error
	ListNewestFirst(ctx context.Context) ([]question.Question, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
