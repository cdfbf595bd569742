// Package service provides the session store and the job listing,
// delegating persistence to a key-value repository.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/models"
)

// SessionKey is the fixed key the session is persisted under.
const SessionKey = "pakjobs_auth"

// KVRepository defines the persistence operations
// required by the session service.
type KVRepository interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// SessionService loads and saves the visitor session.
type SessionService struct {
	repo KVRepository
	log  *zap.Logger
}

// NewSessionService constructs a SessionService using the provided repository.
// A nil logger is replaced with a no-op one.
func NewSessionService(repo KVRepository, log *zap.Logger) *SessionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionService{repo: repo, log: log}
}

// Load reads the persisted session. A missing entry yields an anonymous
// session. So does an unreadable or malformed one, after a warning is
// logged; the stored value is left as is until the next Save.
func (s *SessionService) Load(ctx context.Context) models.Session {
	raw, ok, err := s.repo.Get(ctx, SessionKey)
	if err != nil {
		s.log.Warn("cannot read persisted session, starting anonymous",
			zap.String("key", SessionKey), zap.Error(err))
		return models.Anonymous()
	}
	if !ok {
		return models.Anonymous()
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn("malformed persisted session, starting anonymous",
			zap.String("key", SessionKey), zap.Error(err))
		return models.Anonymous()
	}
	return sess
}

// Save serializes and persists sess.
func (s *SessionService) Save(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Put(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
