package memory

import (
	"time"

	"portfolio-chat-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

const (
	idleExpiration = 1 * time.Hour
	sweepInterval  = 10 * time.Minute
)

// SessionRepository holds live conversational sessions. The idle expiration
// is a leak guard for connections that die without a clean disconnect; normal
// teardown deletes the entry immediately. Both Save and Get reset the idle
// clock, so only sessions with no traffic at all age out.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return newSessionRepository(idleExpiration, sweepInterval)
}

func newSessionRepository(ttl, sweep time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, sweep),
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		// Reading a session counts as activity.
		r.cache.Set(sessionID, x, cache.DefaultExpiration)
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Count reports how many conversations are currently tracked.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
