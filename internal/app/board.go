package app

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
)

// ErrJobNotFound is returned when an action names an unknown posting.
var ErrJobNotFound = errors.New("job not found")

// SessionStore persists the session between runs.
type SessionStore interface {
	Load(ctx context.Context) models.Session
	Save(ctx context.Context, s models.Session) error
}

// Board owns the single visitor's State. Every method runs one reducer to
// completion under a lock and persists the session when it changed.
type Board struct {
	mu    sync.Mutex
	state State
	store SessionStore
	log   *zap.Logger
	newID func() string
}

// Option configures a Board.
type Option func(*Board)

// WithIDGenerator overrides how registration IDs are generated.
func WithIDGenerator(f func() string) Option {
	return func(b *Board) { b.newID = f }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *zap.Logger) Option {
	return func(b *Board) { b.log = l }
}

// NewBoard loads the persisted session from store and starts on the home page.
func NewBoard(ctx context.Context, store SessionStore, opts ...Option) *Board {
	b := &Board{
		store: store,
		log:   zap.NewNop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.state = NewState(store.Load(ctx))
	return b
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copyState()
}

// View returns a copy of the current state and consumes its flash message.
func (b *Board) View() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.copyState()
	b.state.Flash = ""
	return st
}

func (b *Board) copyState() State {
	st := b.state
	if st.Notice != nil {
		n := *st.Notice
		st.Notice = &n
	}
	return st
}

// Do runs a reducer that does not touch the session.
func (b *Board) Do(reduce func(*State)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	reduce(&b.state)
}

// commit persists the session. The in-memory transition stands even when
// the write fails.
func (b *Board) commit(ctx context.Context) error {
	if err := b.store.Save(ctx, b.state.Session); err != nil {
		b.log.Error("failed to persist session", zap.Error(err))
		return err
	}
	return nil
}

// Login signs in with the demo identity. The password is ignored.
func (b *Board) Login(ctx context.Context, email, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	Login(&b.state, email)
	return b.commit(ctx)
}

// Register creates a new profile and opens the profile editor.
func (b *Board) Register(ctx context.Context, fullName, email, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	Register(&b.state, fullName, email, b.newID)
	return b.commit(ctx)
}

// Logout signs out.
func (b *Board) Logout(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	Logout(&b.state)
	return b.commit(ctx)
}

// UpdateProfile saves the profile form. It does nothing when nobody is
// signed in.
func (b *Board) UpdateProfile(ctx context.Context, bio, skillsText, city string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !UpdateProfile(&b.state, bio, skillsText, city) {
		return nil
	}
	return b.commit(ctx)
}

// Apply runs the application gate for the posting with jobID.
func (b *Board) Apply(jobID string) (gate.Decision, error) {
	job, ok := catalog.FindJob(jobID)
	if !ok {
		return gate.Decision{}, ErrJobNotFound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return Apply(&b.state, job), nil
}
