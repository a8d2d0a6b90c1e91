package application

import (
	"errors"

	"github.com/daniilsm/sickday-go/internal/api/middleware"
	"github.com/daniilsm/sickday-go/internal/config"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/repository"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginTaken          = errors.New("login already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	Repos *repository.Repos
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{Repos: repos}
}

// Register creates an account with the STUDENT role only; further roles are
// granted by an admin afterwards.
func (s *AuthService) Register(input user.RegisterInput) (*user.User, TokenPair, error) {
	_, err := s.Repos.User.FindByLogin(input.Login)
	if err == nil {
		return nil, TokenPair{}, ErrLoginTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, TokenPair{}, storeErr("register", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), config.BcryptCost)
	if err != nil {
		return nil, TokenPair{}, ErrPasswordHashFailure
	}

	u := &user.User{
		Login:    input.Login,
		Password: string(hashed),
		Name:     input.Name,
		Roles:    pq.StringArray{user.RoleStudent},
		GroupID:  input.GroupID,
	}
	if err := s.Repos.User.Create(u); err != nil {
		return nil, TokenPair{}, storeErr("register", err)
	}

	return s.issueTokens(u)
}

func (s *AuthService) Login(login, password string) (*user.User, TokenPair, error) {
	u, err := s.Repos.User.FindByLogin(login)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	return s.issueTokens(u)
}

// Refresh trades a valid refresh token for a new pair. Roles are reloaded
// from the store so a grant or revoke takes effect at the next refresh.
func (s *AuthService) Refresh(refreshToken string) (*user.User, TokenPair, error) {
	claims, err := middleware.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repos.User.FindByID(claims.UserID)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	return s.issueTokens(u)
}

func (s *AuthService) issueTokens(u *user.User) (*user.User, TokenPair, error) {
	access, refresh, err := middleware.GenerateTokenPair(u.ID, u.Roles)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
