package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fomo-seed/internal/store"
)

// Collection is the slice of *mongo.Collection the seed steps need. Keeping it
// narrow lets tests substitute an in-memory fake.
type Collection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// Summary reports what a run did, for the completion log line.
type Summary struct {
	RoadmapInserted int
	RoadmapExisting int64
	TeamInserted    int
	TeamExisting    int64
	SettingsFound   bool
	SettingsModules int
}

// Runner executes the three migration steps in order against one database.
type Runner struct {
	tasks    Collection
	members  Collection
	settings Collection
	log      *slog.Logger

	// now is swappable so tests can pin timestamps.
	now func() time.Time
}

// NewRunner wires a Runner over the three collections.
func NewRunner(tasks, members, settings Collection, log *slog.Logger) *Runner {
	return &Runner{
		tasks:    tasks,
		members:  members,
		settings: settings,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run performs the roadmap seed, the team seed, and the settings check, in
// that order. The first failing step aborts the rest; the returned error names
// the step and wraps the driver error. The summary is valid for the steps that
// completed.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	steps := []struct {
		name string
		fn   func(context.Context, *Summary) error
	}{
		{"roadmap_tasks", r.seedRoadmapTasks},
		{"team_members", r.seedTeamMembers},
		{"platform_settings", r.checkPlatformSettings},
	}

	for _, step := range steps {
		if err := step.fn(ctx, &sum); err != nil {
			return sum, fmt.Errorf("migration step %s failed: %w", step.name, err)
		}
	}
	return sum, nil
}

// seedRoadmapTasks inserts the default roadmap as one batch, unless the
// collection already holds documents.
func (r *Runner) seedRoadmapTasks(ctx context.Context, sum *Summary) error {
	existing, err := r.tasks.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count roadmap tasks: %w", err)
	}
	if existing > 0 {
		sum.RoadmapExisting = existing
		r.log.Info("roadmap tasks already present, skipping", "count", existing)
		return nil
	}

	tasks := DefaultRoadmapTasks(r.now())
	docs := make([]interface{}, len(tasks))
	for i, task := range tasks {
		docs[i] = task
	}
	if _, err := r.tasks.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert roadmap tasks: %w", err)
	}

	sum.RoadmapInserted = len(tasks)
	r.log.Info("seeded roadmap tasks", "count", len(tasks))
	return nil
}

// seedTeamMembers does the same for the default team profiles.
func (r *Runner) seedTeamMembers(ctx context.Context, sum *Summary) error {
	existing, err := r.members.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count team members: %w", err)
	}
	if existing > 0 {
		sum.TeamExisting = existing
		r.log.Info("team members already present, skipping", "count", existing)
		return nil
	}

	members := DefaultTeamMembers(r.now())
	docs := make([]interface{}, len(members))
	for i, member := range members {
		docs[i] = member
	}
	if _, err := r.members.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert team members: %w", err)
	}

	sum.TeamInserted = len(members)
	r.log.Info("seeded team members", "count", len(members))
	return nil
}

// checkPlatformSettings reports on the singleton settings document without
// writing anything. A missing document is a warning, not a failure: the
// backend creates it on first boot.
func (r *Runner) checkPlatformSettings(ctx context.Context, sum *Summary) error {
	var settings store.PlatformSettings
	err := r.settings.FindOne(ctx, bson.M{"id": store.PlatformSettingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		r.log.Warn("platform settings not found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load platform settings: %w", err)
	}

	sum.SettingsFound = true
	sum.SettingsModules = len(settings.ServiceModules)
	r.log.Info("platform settings exist", "modules", sum.SettingsModules)
	return nil
}
