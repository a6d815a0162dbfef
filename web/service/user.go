// Package service implements the credential and article operations of
// gopress on top of the gorm store.
package service

import (
	"errors"

	"github.com/gopress-cms/gopress/database"
	"github.com/gopress-cms/gopress/database/model"
	"github.com/gopress-cms/gopress/util/crypto"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken signals a registration against an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUnknownUsername signals a login against a non-existent user.
	ErrUnknownUsername = errors.New("username not found")
	// ErrWrongPassword signals a login with a password that does not
	// match the stored digest.
	ErrWrongPassword = errors.New("invalid login")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register hashes the password and persists a new user. A username
// collision surfaces as ErrUsernameTaken, not a store failure.
func (s *UserService) Register(name, email, username, password string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// CheckUser verifies a username/password pair. The unknown-username and
// wrong-password outcomes stay distinct for user feedback only.
func (s *UserService) CheckUser(username, password string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUnknownUsername
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// GetByUsername loads a single user record.
func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
