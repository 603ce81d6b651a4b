package store

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fomo-seed/internal/config"
)

// Store wraps the Mongo client with handles to the database this tool works
// against. The client is connected once and must be released with Close.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// Connect opens a client against cfg.MongoURL and pings the primary so that a
// bad endpoint fails here rather than inside the first seed step.
func Connect(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.MongoURL, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.MongoURL, err)
	}

	log.Debug("mongo connected", "url", cfg.MongoURL, "db", cfg.MongoDB)
	return &Store{
		client: client,
		db:     client.Database(cfg.MongoDB),
		log:    log,
	}, nil
}

// Close releases the underlying client. Safe to call on a nil Store.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// RoadmapTasks returns the roadmap task collection.
func (s *Store) RoadmapTasks() *mongo.Collection {
	return s.db.Collection(RoadmapTasksCollection)
}

// TeamMembers returns the team member collection.
func (s *Store) TeamMembers() *mongo.Collection {
	return s.db.Collection(TeamMembersCollection)
}

// PlatformSettings returns the settings collection holding the singleton
// settings document.
func (s *Store) PlatformSettings() *mongo.Collection {
	return s.db.Collection(PlatformSettingsCollection)
}
