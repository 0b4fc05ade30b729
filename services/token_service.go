package services

import (
	"sync"

	"github.com/google/uuid"
)

// TokenService maps opaque session tokens to user ids. Tokens live only
// in process memory: a restart drops every session. There is no expiry
// and no per-user limit; repeated logins accumulate independent tokens.
type TokenService struct {
	mu     sync.RWMutex
	tokens map[string]uint
}

func NewTokenService() *TokenService {
	return &TokenService{tokens: make(map[string]uint)}
}

// Create issues a fresh token for the user.
func (s *TokenService) Create(userID uint) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token
}

func (s *TokenService) UserID(token string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

// Invalidate removes the token; unknown tokens are a no-op.
func (s *TokenService) Invalidate(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
