// internal/services/user_service.go
package services

import (
	"errors"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/store"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")
)

// UserService manages storefront accounts. There is no login: accounts
// exist so carts can be tied to a user id instead of a browser session.
type UserService struct {
	store store.Store
}

func NewUserService(store store.Store) *UserService {
	return &UserService{store: store}
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName,omitempty" validate:"omitempty,max=255"`
}

func (s *UserService) Register(req *CreateUserRequest) (models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.User{}, err
	}

	if _, exists := s.store.GetUserByUsername(req.Username); exists {
		return models.User{}, ErrUsernameTaken
	}
	if _, exists := s.store.GetUserByEmail(req.Email); exists {
		return models.User{}, ErrEmailTaken
	}

	return s.store.CreateUser(models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	})
}

func (s *UserService) Get(id int) (models.User, error) {
	user, ok := s.store.GetUser(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
