package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-builder/internal/domain"
)

// Store registro en memoria de sesiones activas. No persiste nada: una sesión
// inactiva más de ttl se descarta.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore construye el registro. ttl <= 0 desactiva la expiración.
func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: make(map[string]*Session), ttl: ttl}
}

// Create abre una sesión nueva con una factura por defecto.
func (s *Store) Create() *Session {
	sess := newSession(uuid.New().String(), time.Now())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get busca una sesión; domain.ErrNotFound si no existe.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

// Delete descarta una sesión; domain.ErrNotFound si no existe.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len cantidad de sesiones activas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Evict elimina las sesiones sin actividad desde antes de now-ttl y devuelve cuántas quitó.
func (s *Store) Evict(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor ejecuta Evict cada every hasta que ctx se cancela.
// onEvict (opcional) recibe la cantidad eliminada en cada pasada con bajas.
func (s *Store) RunJanitor(ctx context.Context, every time.Duration, onEvict func(n int)) {
	if s.ttl <= 0 || every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Evict(now); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}
