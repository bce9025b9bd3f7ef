package auth_repo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Реализация хранилища сессий в памяти процесса.
// Истекшие сессии удаляются лениво при обращении
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.Session
}

func NewAuthRepository() repository.AuthRepository {
	return &repo{sessions: make(map[string]*model.Session)}
}

// CreateSession — сохраняет сессию.
// Принимает model.Session (ID, Username, RefreshToken, ExpiresAt)
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := *session
	r.sessions[session.ID] = &s
	return nil
}

// GetSession — возвращает копию сессии по её ID.
// Истекшая сессия удаляется и считается отсутствующей
func (r *repo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		delete(r.sessions, sessionID)
		return nil, ErrSessionExpired
	}

	s := *session
	return &s, nil
}

// DeleteSession — удаляет сессию по ID
func (r *repo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
