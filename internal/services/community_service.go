package services

import (
	"context"
	"fmt"
	"time"

	"community-board/internal/domain/question"
	"community-board/internal/repository"
	board_errors "community-board/pkg/errors"
	"community-board/pkg/events"
	"community-board/pkg/logger"
)

type CommunityService struct {
	questions repository.QuestionRepository
	publisher events.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewCommunityService(questions repository.QuestionRepository, publisher events.Publisher, l *logger.Logger) *CommunityService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &CommunityService{
		questions: questions,
		publisher: publisher,
		logger:    l,
		now:       time.Now,
	}
}

// Create stores body as a new question and returns every question, newest first.
func (s *CommunityService) Create(ctx context.Context, body map[string]any) ([]question.Question, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: question body must be an object", board_errors.ErrInvalidInput)
	}

	q := question.New(body)
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	s.logger.WithContext(ctx).Infof("question saved: id=%s text=%q", q.ID.Hex(), q.Text())
	s.publish(ctx, events.TypeQuestionCreated, q)

	return s.questions.ListNewestFirst(ctx)
}

func (s *CommunityService) List(ctx context.Context) ([]question.Question, error) {
	return s.questions.ListNewestFirst(ctx)
}

// Delete removes the question if it exists and returns what is left. A
// missing id is not an error.
func (s *CommunityService) Delete(ctx context.Context, id string) ([]question.Question, error) {
	deleted, err := s.questions.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.WithContext(ctx).Infof("deleted question: id=%s existed=%t", id, deleted)
	if deleted {
		s.publish(ctx, events.TypeQuestionDeleted, map[string]string{question.FieldID: id})
	}

	return s.questions.ListNewestFirst(ctx)
}

func (s *CommunityService) publish(ctx context.Context, eventType string, payload interface{}) {
	err := s.publisher.Publish(ctx, events.CommunityChannel, events.Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: s.now().Unix(),
	})
	if err != nil {
		s.logger.WithContext(ctx).Warnf("failed to publish %s: %v", eventType, err)
	}
}
