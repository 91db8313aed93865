package services

import (
	"errors"
	"sync"
	"time"

	"traffic-analytics-api/models"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")

// UserStore keeps registered operators in memory. The system deliberately
// has no database — the input dataset is the only store — so accounts live
// for the process lifetime.
type UserStore struct {
	mu     sync.RWMutex
	byMail map[string]*models.User
	nextID uint
}

func NewUserStore() *UserStore {
	return &UserStore{byMail: make(map[string]*models.User), nextID: 1}
}

func (s *UserStore) Create(email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byMail[email]; exists {
		return nil, ErrEmailTaken
	}
	user := &models.User{
		ID:        s.nextID,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.byMail[email] = user
	return user, nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byMail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byMail)
}
