package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"community-board/config"
	"community-board/pkg/logger"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection     = "users"
	QuestionsCollection = "questions"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

var errNotConnected = errors.New("database not connected")

// Connect opens the process-wide Mongo client. Connection state changes only
// reach the log: a failed initial ping does not stop startup, the driver keeps
// retrying in the background.
func Connect(ctx context.Context, cfg *config.Config, l *logger.Logger) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerMonitor(connectionMonitor(l))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		l.Errorf("MongoDB connection error: %v", err)
	}

	Client = client
	DB = client.Database(cfg.MongoDatabase)
	return DB, nil
}

func connectionMonitor(l *logger.Logger) *event.ServerMonitor {
	var opened sync.Once
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			opened.Do(func() {
				l.Infof("Connected to MongoDB (%s)", e.ConnectionID)
			})
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			l.Errorf("MongoDB connection error: %v", e.Failure)
		},
	}
}

func HealthCheck(ctx context.Context) error {
	if Client == nil {
		return errNotConnected
	}
	return Client.Ping(ctx, readpref.Primary())
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
