package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/ports"
)

func setupStorage(t *testing.T) ports.Storage {
	t.Helper()
	store, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestKVStore_RoundTrip(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	settings := domain.DefaultTimerSettings()
	require.NoError(t, store.KV().Save(ctx, ports.KeySettings, settings))

	var loaded domain.TimerSettings
	found, err := store.KV().Load(ctx, ports.KeySettings, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, settings, loaded)
}

func TestKVStore_LoadMissingKey(t *testing.T) {
	store := setupStorage(t)

	var dest int
	found, err := store.KV().Load(context.Background(), "never_written", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_SaveOverwrites(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, store.KV().Save(ctx, ports.KeyPomodorosToday, 3))
	require.NoError(t, store.KV().Save(ctx, ports.KeyPomodorosToday, 4))

	var count int
	found, err := store.KV().Load(ctx, ports.KeyPomodorosToday, &count)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, count)
}

func TestKVStore_Delete(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, store.KV().Save(ctx, ports.KeyStreak, domain.FocusStreak{CurrentStreak: 2}))
	require.NoError(t, store.KV().Delete(ctx, ports.KeyStreak))

	var streak domain.FocusStreak
	found, err := store.KV().Load(ctx, ports.KeyStreak, &streak)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is not an error.
	assert.NoError(t, store.KV().Delete(ctx, ports.KeyStreak))
}

func TestSubjectRepository_CRUD(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	subject, err := domain.NewSubject("Write quarterly report")
	require.NoError(t, err)
	require.NoError(t, store.Subjects().Save(ctx, subject))

	found, err := store.Subjects().FindByID(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, subject.Title, found.Title)
	assert.Equal(t, domain.SubjectTodo, found.Status)

	found.Start()
	require.NoError(t, store.Subjects().Update(ctx, found))

	doing := domain.SubjectDoing
	active, err := store.Subjects().FindAll(ctx, &doing)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, subject.ID, active[0].ID)

	require.NoError(t, store.Subjects().Delete(ctx, subject.ID))
	_, err = store.Subjects().FindByID(ctx, subject.ID)
	assert.ErrorIs(t, err, domain.ErrSubjectNotFound)
}

func TestSubjectRepository_UpdateMissing(t *testing.T) {
	store := setupStorage(t)

	subject, _ := domain.NewSubject("ghost")
	err := store.Subjects().Update(context.Background(), subject)
	assert.ErrorIs(t, err, domain.ErrSubjectNotFound)
}

func TestSubjectRepository_FindMatching(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	for _, title := range []string{"Write quarterly report", "Review pull requests", "Plan sprint"} {
		subject, err := domain.NewSubject(title)
		require.NoError(t, err)
		require.NoError(t, store.Subjects().Save(ctx, subject))
	}

	matches, err := store.Subjects().FindMatching(ctx, "report")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Write quarterly report", matches[0].Title)

	none, err := store.Subjects().FindMatching(ctx, "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}
