package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"community-board/internal/domain/question"
	"community-board/internal/domain/user"
	board_errors "community-board/pkg/errors"
	"community-board/pkg/events"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store down")

type fakeUsersRepo struct {
	mu    sync.Mutex
	users []user.User

	findErr   error
	createErr error
	creates   int
}

func (f *fakeUsersRepo) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUsersRepo) FindByUsername(_ context.Context, username string) ([]user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []user.User{}
	for _, u := range f.users {
		if u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsersRepo) FindByEmailOrUsername(_ context.Context, email, username string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return user.User{}, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return user.User{}, board_errors.ErrNotFound
}

type fakeQuestionsRepo struct {
	mu        sync.Mutex
	questions []question.Question
	clock     time.Time

	createErr error
	listErr   error
	deleteErr error
}

func (f *fakeQuestionsRepo) Create(_ context.Context, q *question.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.clock = f.clock.Add(time.Second)
	q.ID = primitive.NewObjectID()
	q.CreatedAt = f.clock
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionsRepo) ListNewestFirst(context.Context) ([]question.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]question.Question, len(f.questions))
	copy(out, f.questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeQuestionsRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, board_errors.ErrInvalidInput
	}
	for i, q := range f.questions {
		if q.ID == oid {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	channels []string
	events   []events.Event
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels = append(p.channels, channel)
	p.events = append(p.events, event)
	return p.err
}
