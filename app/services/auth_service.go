package services

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/auth"
	"github.com/shashiranjanraj/maison/pkg/logger"
	"gorm.io/gorm"
)

// AuthService handles registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// Session is what a successful register or login returns.
type Session struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Register creates an account with the user role and signs the caller in.
func (s *AuthService) Register(username, password string) (Session, error) {
	taken, err := s.users.UsernameTaken(username)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	if taken {
		return Session{}, apperr.Conflict("Username already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	user := models.User{Username: username, Password: hash, Role: "user"}
	if err := s.users.Create(&user); err != nil {
		return Session{}, apperr.Internal(err)
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return s.session(user)
}

// Login checks credentials and returns a fresh session. Unknown username
// and wrong password produce the same error so the API does not reveal
// which accounts exist.
func (s *AuthService) Login(username, password string) (Session, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, apperr.New(apperr.KindUnauthenticated, "Invalid credentials")
	}
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return Session{}, apperr.New(apperr.KindUnauthenticated, "Invalid credentials")
	}

	return s.session(user)
}

func (s *AuthService) session(user models.User) (Session, error) {
	token, err := auth.GenerateToken(auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	return Session{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
