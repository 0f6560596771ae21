package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

type recordingPublisher struct {
	created []events.ArtifactCreatedPayload
}

func (r *recordingPublisher) PublishArtifactCreated(_ context.Context, p events.ArtifactCreatedPayload) error {
	r.created = append(r.created, p)
	return nil
}

func seedArtifactTask(t *testing.T, client *ent.Client) *ent.ResearchTask {
	t.Helper()
	task, err := services.NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		Title:         "export task",
		ResearchQuery: "battery manufacturers in the EU",
		ResearchType:  string(researchtask.ResearchTypeDataAggregation),
		AggregationConfig: map[string]any{
			"entities":     []string{"company"},
			"attributes":   []string{"hq"},
			"search_space": "EU",
		},
	})
	require.NoError(t, err)
	return task
}

func TestStore_PutAndRead(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := &recordingPublisher{}
	store := NewStore(t.TempDir(), client.Client, publisher, nil)
	ctx := context.Background()

	task := seedArtifactTask(t, client.Client)
	data := []byte("name,unique_identifier\nacme,\n")

	row, err := store.Put(ctx, task.ID, "csv", "csv", "text/csv", data)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), row.SizeBytes)
	assert.Equal(t, filepath.Join(task.ID, row.ID+".csv"), row.Path)
	assert.Len(t, row.Checksum, 64)

	got, gotRow, err := store.Read(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, row.ID, gotRow.ID)

	require.Len(t, publisher.created, 1)
	assert.Equal(t, task.ID, publisher.created[0].TaskID)
	assert.Equal(t, "csv", publisher.created[0].Kind)
}

func TestStore_ReadDetectsCorruption(t *testing.T) {
	client := testdb.NewTestClient(t)
	root := t.TempDir()
	store := NewStore(root, client.Client, nil, nil)
	ctx := context.Background()

	task := seedArtifactTask(t, client.Client)
	row, err := store.Put(ctx, task.ID, "csv", "csv", "text/csv", []byte("original"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, row.Path), []byte("tampered"), 0o644))
	_, _, err = store.Read(ctx, row.ID)
	assert.ErrorContains(t, err, "checksum mismatch")
}

func TestStore_Latest(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(t.TempDir(), client.Client, nil, nil)
	ctx := context.Background()

	task := seedArtifactTask(t, client.Client)

	_, err := store.Latest(ctx, task.ID, "csv")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = store.Put(ctx, task.ID, "csv", "csv", "text/csv", []byte("v1"))
	require.NoError(t, err)
	second, err := store.Put(ctx, task.ID, "csv", "csv", "text/csv", []byte("v2"))
	require.NoError(t, err)

	latest, err := store.Latest(ctx, task.ID, "csv")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestStore_RemoveTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	root := t.TempDir()
	store := NewStore(root, client.Client, nil, nil)
	ctx := context.Background()

	task := seedArtifactTask(t, client.Client)
	row, err := store.Put(ctx, task.ID, "csv", "csv", "text/csv", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.RemoveTask(task.ID))
	_, statErr := os.Stat(filepath.Join(root, row.Path))
	assert.True(t, os.IsNotExist(statErr))
}
