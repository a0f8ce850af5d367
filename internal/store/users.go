// internal/store/users.go
package store

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/atelierluna/jewelry-backend/internal/models"
)

func (s *MemoryStore) GetUser(id int) (models.User, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *MemoryStore) GetUserByUsername(username string) (models.User, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.userOrder {
		if strings.EqualFold(s.users[id].Username, username) {
			return s.users[id], true
		}
	}
	return models.User{}, false
}

func (s *MemoryStore) GetUserByEmail(email string) (models.User, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.userOrder {
		if strings.EqualFold(s.users[id].Email, email) {
			return s.users[id], true
		}
	}
	return models.User{}, false
}

// CreateUser stores the account with the password replaced by its bcrypt
// hash. There is no login flow; the hash only keeps plaintext out of memory
// dumps and future persistence.
func (s *MemoryStore) CreateUser(user models.User) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	user.ID = s.userSeq()
	user.Password = string(hash)
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user, nil
}
