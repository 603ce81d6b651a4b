package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fomo-seed/internal/store"
)

// fakeCollection is an in-memory Collection: counts reflect inserted docs, and
// FindOne serves a single canned document.
type fakeCollection struct {
	docs []interface{}

	findDoc interface{}

	countErr  error
	insertErr error

	countCalls  int
	insertCalls int
}

func (f *fakeCollection) CountDocuments(_ context.Context, _ interface{}, _ ...*options.CountOptions) (int64, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.docs)), nil
}

func (f *fakeCollection) InsertMany(_ context.Context, documents []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.docs = append(f.docs, documents...)
	return &mongo.InsertManyResult{InsertedIDs: make([]interface{}, len(documents))}, nil
}

func (f *fakeCollection) FindOne(_ context.Context, _ interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if f.findDoc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findDoc, nil, nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(tasks, members, settings *fakeCollection) *Runner {
	return NewRunner(tasks, members, settings, testLogger())
}

func TestRun_EmptyDatabase(t *testing.T) {
	tasks := &fakeCollection{}
	members := &fakeCollection{}
	settings := &fakeCollection{}

	sum, err := newTestRunner(tasks, members, settings).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, sum.RoadmapInserted)
	assert.Equal(t, 3, sum.TeamInserted)
	assert.False(t, sum.SettingsFound)
	assert.Len(t, tasks.docs, 12)
	assert.Len(t, members.docs, 3)

	seen := map[string]bool{}
	for _, doc := range tasks.docs {
		task, ok := doc.(store.RoadmapTask)
		require.True(t, ok)
		assert.NotEmpty(t, task.ID)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
		assert.False(t, task.CreatedAt.IsZero())
		assert.False(t, task.UpdatedAt.IsZero())
	}
	for _, doc := range members.docs {
		member, ok := doc.(store.TeamMember)
		require.True(t, ok)
		assert.NotEmpty(t, member.ID)
		assert.False(t, seen[member.ID], "duplicate id %s", member.ID)
		seen[member.ID] = true
		assert.False(t, member.CreatedAt.IsZero())
		assert.False(t, member.UpdatedAt.IsZero())
	}
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	tasks := &fakeCollection{}
	members := &fakeCollection{}
	settings := &fakeCollection{}
	runner := newTestRunner(tasks, members, settings)

	_, err := runner.Run(context.Background())
	require.NoError(t, err)
	sum, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, sum.RoadmapInserted)
	assert.Equal(t, int64(12), sum.RoadmapExisting)
	assert.Equal(t, 0, sum.TeamInserted)
	assert.Equal(t, int64(3), sum.TeamExisting)
	assert.Equal(t, 1, tasks.insertCalls)
	assert.Equal(t, 1, members.insertCalls)
	assert.Len(t, tasks.docs, 12)
	assert.Len(t, members.docs, 3)
}

func TestRun_PrepopulatedRoadmapIsSkipped(t *testing.T) {
	tasks := &fakeCollection{docs: make([]interface{}, 5)}
	members := &fakeCollection{}
	settings := &fakeCollection{}

	sum, err := newTestRunner(tasks, members, settings).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, tasks.insertCalls)
	assert.Equal(t, int64(5), sum.RoadmapExisting)
	assert.Len(t, tasks.docs, 5)
	// The team step is independent and still seeds.
	assert.Equal(t, 3, sum.TeamInserted)
}

func TestRun_ReportsSettingsModules(t *testing.T) {
	settings := &fakeCollection{
		findDoc: store.PlatformSettings{
			ID: store.PlatformSettingsID,
			ServiceModules: []store.ServiceModule{
				{Key: "analytics", Name: "Analytics", Enabled: true},
				{Key: "otc", Name: "OTC Marketplace", Enabled: false},
				{Key: "nft", Name: "NFT Boxes", Enabled: true},
				{Key: "wallet", Name: "Wallet", Enabled: true},
			},
		},
	}

	sum, err := newTestRunner(&fakeCollection{}, &fakeCollection{}, settings).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, sum.SettingsFound)
	assert.Equal(t, 4, sum.SettingsModules)
	// The settings step never writes.
	assert.Equal(t, 0, settings.insertCalls)
}

func TestRun_MissingSettingsIsNotAnError(t *testing.T) {
	settings := &fakeCollection{}

	sum, err := newTestRunner(&fakeCollection{}, &fakeCollection{}, settings).Run(context.Background())

	require.NoError(t, err)
	assert.False(t, sum.SettingsFound)
	assert.Equal(t, 0, sum.SettingsModules)
}

func TestRun_FirstFailureAbortsRemainingSteps(t *testing.T) {
	countErr := errors.New("connection reset")
	tasks := &fakeCollection{countErr: countErr}
	members := &fakeCollection{}
	settings := &fakeCollection{}

	_, err := newTestRunner(tasks, members, settings).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, countErr)
	assert.Contains(t, err.Error(), "migration step roadmap_tasks failed")
	assert.Equal(t, 0, members.countCalls)
}

func TestRun_InsertFailureIsWrapped(t *testing.T) {
	insertErr := errors.New("write concern error")
	members := &fakeCollection{insertErr: insertErr}

	_, err := newTestRunner(&fakeCollection{}, members, &fakeCollection{}).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	assert.Contains(t, err.Error(), "migration step team_members failed")
}

func TestRun_TimestampsComeFromClock(t *testing.T) {
	tasks := &fakeCollection{}
	runner := newTestRunner(tasks, &fakeCollection{}, &fakeCollection{})
	pinned := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	runner.now = func() time.Time { return pinned }

	_, err := runner.Run(context.Background())

	require.NoError(t, err)
	for _, doc := range tasks.docs {
		task := doc.(store.RoadmapTask)
		assert.Equal(t, pinned, task.CreatedAt)
		assert.Equal(t, pinned, task.UpdatedAt)
	}
}
