package memory

import (
	"time"

	"bevgenie-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps warm widget sessions in process memory. Entries
// expire after an hour of inactivity; the durable persona row survives them.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the warm session, minting a fresh one on a cold hit.
// Saving re-arms the TTL either way.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if sess, found := r.Get(sessionID); found {
		return sess
	}
	sess := &store.Session{ID: sessionID}
	r.Save(sess)
	return sess
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
