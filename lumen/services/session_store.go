package services

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/vantagelearn/lumen/lumen/progression"
)

const (
	sessionStoreSize = 4096
	sessionTTL       = 2 * time.Hour
)

type storedSession struct {
	userID    int64
	lesson    *progression.LessonSession
	drill     *progression.DrillSession
	expiresAt time.Time
}

// SessionStore holds ephemeral lesson and drill sessions. Sessions live only
// in memory: an evicted or expired session simply forces the client to start
// over, which matches the product's browser-refresh behavior.
type SessionStore struct {
	cache *lru.Cache
}

func NewSessionStore() *SessionStore {
	cache, _ := lru.New(sessionStoreSize)
	return &SessionStore{cache: cache}
}

func (s *SessionStore) PutLesson(userID int64, session *progression.LessonSession) string {
	id := uuid.NewString()
	s.cache.Add(id, &storedSession{
		userID:    userID,
		lesson:    session,
		expiresAt: time.Now().Add(sessionTTL),
	})
	return id
}

func (s *SessionStore) PutDrill(userID int64, session *progression.DrillSession) string {
	id := uuid.NewString()
	s.cache.Add(id, &storedSession{
		userID:    userID,
		drill:     session,
		expiresAt: time.Now().Add(sessionTTL),
	})
	return id
}

// GetLesson returns the lesson session for id, scoped to the owning user.
func (s *SessionStore) GetLesson(id string, userID int64) (*progression.LessonSession, bool) {
	stored, ok := s.get(id, userID)
	if !ok || stored.lesson == nil {
		return nil, false
	}
	return stored.lesson, true
}

// GetDrill returns the drill session for id, scoped to the owning user.
func (s *SessionStore) GetDrill(id string, userID int64) (*progression.DrillSession, bool) {
	stored, ok := s.get(id, userID)
	if !ok || stored.drill == nil {
		return nil, false
	}
	return stored.drill, true
}

func (s *SessionStore) Remove(id string) {
	s.cache.Remove(id)
}

func (s *SessionStore) get(id string, userID int64) (*storedSession, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	stored, ok := v.(*storedSession)
	if !ok || stored.userID != userID {
		return nil, false
	}
	if time.Now().After(stored.expiresAt) {
		s.cache.Remove(id)
		return nil, false
	}
	return stored, true
}
