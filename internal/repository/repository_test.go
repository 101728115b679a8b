package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timers/internal/db"
	"timers/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	require.NoError(t, db.RunMigrations(context.Background(), database, migrationsDir))
	return database
}

func createUser(t *testing.T, repo *UserRepository, username string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "hash-" + username,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	created := createUser(t, repo, "alice")

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash-alice", got.PasswordHash)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Microsecond)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	createUser(t, repo, "alice")

	err := repo.Create(context.Background(), &model.User{
		ID:           uuid.NewString(),
		Username:     "alice",
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	users := NewUserRepository(database)
	sessions := NewSessionRepository(database)

	user := createUser(t, users, "alice")

	first, err := sessions.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	second, err := sessions.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	got, err := sessions.FindSessionUser(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, sessions.DeleteSession(ctx, first))
	require.NoError(t, sessions.DeleteSession(ctx, first))

	_, err = sessions.FindSessionUser(ctx, first)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = sessions.FindSessionUser(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestSessionRepository_OrphanedSessionIsNotFound(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepository(openTestDB(t))

	sessionID, err := sessions.CreateSession(ctx, "missing-user")
	require.NoError(t, err)

	_, err = sessions.FindSessionUser(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimerRepository_StartListStop(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	user := createUser(t, NewUserRepository(database), "alice")
	timers := NewTimerRepository(database)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := &model.Timer{ID: uuid.NewString(), UserID: user.ID, Description: "reading", Start: start, IsActive: true}
	second := &model.Timer{ID: uuid.NewString(), UserID: user.ID, Description: "writing", Start: start.Add(time.Minute), IsActive: true}
	require.NoError(t, timers.Create(ctx, second))
	require.NoError(t, timers.Create(ctx, first))

	all, err := timers.ListByUser(ctx, user.ID, model.TimerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "reading", all[0].Description)
	assert.True(t, all[0].IsActive)
	assert.Nil(t, all[0].End)
	assert.True(t, all[0].Start.Equal(start))

	end := start.Add(90 * time.Second)
	require.NoError(t, timers.Stop(ctx, first.ID, user.ID, end))

	active := true
	activeOnly, err := timers.ListByUser(ctx, user.ID, model.TimerFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, second.ID, activeOnly[0].ID)

	inactive := false
	stopped, err := timers.ListByUser(ctx, user.ID, model.TimerFilter{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, stopped, 1)
	assert.False(t, stopped[0].IsActive)
	require.NotNil(t, stopped[0].End)
	assert.True(t, stopped[0].End.Equal(end))
}

func TestTimerRepository_StopOutcomes(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	users := NewUserRepository(database)
	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")
	timers := NewTimerRepository(database)

	timer := &model.Timer{ID: uuid.NewString(), UserID: alice.ID, Description: "reading", Start: time.Now(), IsActive: true}
	require.NoError(t, timers.Create(ctx, timer))

	assert.ErrorIs(t, timers.Stop(ctx, uuid.NewString(), alice.ID, time.Now()), ErrNotFound)
	assert.ErrorIs(t, timers.Stop(ctx, timer.ID, bob.ID, time.Now()), ErrNotFound)

	end := time.Now().Add(time.Second)
	require.NoError(t, timers.Stop(ctx, timer.ID, alice.ID, end))
	assert.ErrorIs(t, timers.Stop(ctx, timer.ID, alice.ID, end.Add(time.Hour)), ErrAlreadyStopped)

	list, err := timers.ListByUser(ctx, alice.ID, model.TimerFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].End.Equal(end.UTC()), "second stop must not move the end time")

	bobTimers, err := timers.ListByUser(ctx, bob.ID, model.TimerFilter{})
	require.NoError(t, err)
	assert.Empty(t, bobTimers)
}

func TestFormatTime_SortsLexically(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 100, time.UTC)
	later := time.Date(2026, 1, 1, 0, 0, 0, 90000000, time.UTC)
	assert.Less(t, formatTime(earlier), formatTime(later))

	parsed, err := parseTime(formatTime(later))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(later))
}
