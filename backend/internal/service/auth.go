package service

import (
	"net/http"

	"github.com/bulletin-dev/bulletin/backend/internal/utils/jwt"
	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/bulletin-dev/bulletin/shared/errors"
	"golang.org/x/crypto/bcrypt"
)

// to mock service in tests
type AuthService interface {
	Register(email, password, name string) (*domain.User, error)
	Login(email, password string) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     jwt.JwtService
}

type AuthStorage interface {
	CreateUser(user *domain.User) (domain.UserId, error)
	GetUser(email domain.Email) (*domain.User, error)
}

func NewAuth(storage AuthStorage, jwt jwt.JwtService) AuthService {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(email, password, name string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	id, err := a.storage.CreateUser(user)
	if err != nil {
		return nil, err
	}
	user.Id = id
	return user, nil
}

func (a *Auth) Login(email, password string) (string, error) {
	user, err := a.storage.GetUser(email)
	if err != nil {
		// don't leak whether the account exists
		return "", &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	}

	return a.jwt.NewToken(user)
}
