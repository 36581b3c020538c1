package pg

import (
	"database/sql"
	"errors"

	internal_errors "github.com/bulletin-dev/bulletin/shared/errors"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

func (s *Storage) CreateUser(user *domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRow(
		"INSERT INTO users(email, name, admin, password_hash) VALUES($1, $2, $3, $4) RETURNING id",
		user.Email, user.Name, user.Admin, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return 0, &internal_errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: 409}
		}
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetUser(email domain.Email) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"SELECT id, email, name, admin, password_hash, created FROM users WHERE email = $1",
		email,
	).Scan(&user.Id, &user.Email, &user.Name, &user.Admin, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: 404}
		}
		return nil, err
	}
	return &user, nil
}
