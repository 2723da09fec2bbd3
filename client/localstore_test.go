package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadev/ria-server/model"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLocalStoreNotesEmpty(t *testing.T) {
	store := newLocalStore(t)

	notes, err := store.Notes()
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.NotNil(t, notes)
}

func TestLocalStorePrependAndPatch(t *testing.T) {
	store := newLocalStore(t)

	require.NoError(t, store.PrependNote(model.Note{ID: "1", Content: "old", Timestamp: 1}))
	require.NoError(t, store.PrependNote(model.Note{ID: "2", Content: "new", Timestamp: 2}))

	notes, err := store.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "2", notes[0].ID)

	patched, found, err := store.PatchNote("1", "edited", []string{"x"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "edited", patched.Content)
	assert.Equal(t, int64(1), patched.Timestamp)

	_, found, err = store.PatchNote("nope", "x", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLocalStoreRemoveNote(t *testing.T) {
	store := newLocalStore(t)

	require.NoError(t, store.SaveNotes([]model.Note{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, store.RemoveNote("1"))
	require.NoError(t, store.RemoveNote("1")) // absent id is not an error

	notes, err := store.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "2", notes[0].ID)
}

func TestLocalStoreGoalsAndReminder(t *testing.T) {
	store := newLocalStore(t)

	goals, err := store.Goals()
	require.NoError(t, err)
	assert.Nil(t, goals.StreakGoal)

	seven := 7
	require.NoError(t, store.SaveGoals(model.Goals{StreakGoal: &seven}))
	goals, err = store.Goals()
	require.NoError(t, err)
	require.NotNil(t, goals.StreakGoal)
	assert.Equal(t, 7, *goals.StreakGoal)

	require.NoError(t, store.SaveReminder(model.ReminderConfig{Enabled: true, Time: "21:00"}))
	cfg, err := store.Reminder()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "21:00", cfg.Time)
}

func TestLocalStoreUserLifecycle(t *testing.T) {
	store := newLocalStore(t)

	user, err := store.User()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.SaveUser(model.User{Phone: "13800000000", Nickname: "ria"}))
	user, err = store.User()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ria", user.Nickname)

	require.NoError(t, store.ClearUser())
	require.NoError(t, store.ClearUser()) // idempotent
	user, err = store.User()
	require.NoError(t, err)
	assert.Nil(t, user)
}
