package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
)

// fakeStore records every saved session.
type fakeStore struct {
	mu      sync.Mutex
	loaded  models.Session
	saved   []models.Session
	saveErr error
}

func (f *fakeStore) Load(context.Context) models.Session { return f.loaded }

func (f *fakeStore) Save(_ context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, s)
	return f.saveErr
}

func (f *fakeStore) last(t *testing.T) models.Session {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.saved, "no session saved")
	return f.saved[len(f.saved)-1]
}

func TestNewBoard_LoadsSession(t *testing.T) {
	store := &fakeStore{loaded: models.Authenticated(models.UserProfile{ID: "1", IsProfileComplete: true})}
	b := NewBoard(context.Background(), store)

	st := b.Snapshot()
	assert.True(t, st.Session.IsAuthenticated())
	assert.Equal(t, models.PageHome, st.Page)
}

func TestBoard_PersistsEverySessionTransition(t *testing.T) {
	store := &fakeStore{}
	b := NewBoard(context.Background(), store, WithIDGenerator(fixedID))
	ctx := context.Background()

	require.NoError(t, b.Register(ctx, "Sana Khan", "sana@example.pk", "secret"))
	u, ok := store.last(t).User()
	require.True(t, ok)
	assert.Equal(t, "fixed-id", u.ID)
	assert.Equal(t, models.PageProfile, b.Snapshot().Page)

	require.NoError(t, b.UpdateProfile(ctx, "bio", "Go, SQL", "Lahore"))
	u, _ = store.last(t).User()
	assert.True(t, u.IsProfileComplete)
	assert.Equal(t, []string{"Go", "SQL"}, u.Skills)

	require.NoError(t, b.Logout(ctx))
	assert.False(t, store.last(t).IsAuthenticated())

	require.NoError(t, b.Login(ctx, "ali@example.pk", "anything"))
	assert.True(t, store.last(t).IsAuthenticated())

	assert.Len(t, store.saved, 4)
}

func TestBoard_UpdateProfileAnonymousSkipsSave(t *testing.T) {
	store := &fakeStore{}
	b := NewBoard(context.Background(), store)

	require.NoError(t, b.UpdateProfile(context.Background(), "bio", "Go", "Lahore"))
	assert.Empty(t, store.saved)
}

func TestBoard_SaveErrorKeepsTransition(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	b := NewBoard(context.Background(), store)

	err := b.Login(context.Background(), "ali@example.pk", "")
	require.Error(t, err)
	assert.True(t, b.Snapshot().Session.IsAuthenticated())
}

func TestBoard_Apply(t *testing.T) {
	b := NewBoard(context.Background(), &fakeStore{})

	_, err := b.Apply("999")
	assert.ErrorIs(t, err, ErrJobNotFound)

	d, err := b.Apply("5")
	require.NoError(t, err)
	assert.Equal(t, gate.RedirectToAuth, d.Outcome)
	assert.Equal(t, models.PageAuth, b.Snapshot().Page)
}

func TestBoard_ViewConsumesFlash(t *testing.T) {
	b := NewBoard(context.Background(), &fakeStore{})
	ctx := context.Background()
	require.NoError(t, b.Login(ctx, "ali@example.pk", ""))
	require.NoError(t, b.UpdateProfile(ctx, "bio", "Go", "Lahore"))

	assert.Equal(t, ProfileSavedFlash, b.View().Flash)
	assert.Empty(t, b.View().Flash)
}

func TestBoard_SnapshotIsACopy(t *testing.T) {
	b := NewBoard(context.Background(), &fakeStore{})
	require.NoError(t, b.Login(context.Background(), "ali@example.pk", ""))
	_, err := b.Apply("2")
	require.NoError(t, err)

	st := b.Snapshot()
	require.NotNil(t, st.Notice)
	st.Notice.Title = "changed"
	assert.Equal(t, "Digital Marketing Lead", b.Snapshot().Notice.Title)
}

func TestBoard_Do(t *testing.T) {
	b := NewBoard(context.Background(), &fakeStore{})
	b.Do(func(s *State) { Search(s, "data", "") })

	st := b.Snapshot()
	assert.Equal(t, models.PageJobs, st.Page)
	assert.Equal(t, "data", st.Filters.Query)
}
