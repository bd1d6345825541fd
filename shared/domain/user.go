package domain

import (
	"errors"
	"time"
)

type UserId = string

type Email = string

// Credentials is the body of a registration request.
type Credentials struct {
	Email    Email  `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	Id        UserId
	Email     Email
	PassHash  string
	CreatedAt time.Time
}

// ErrEmailTaken is returned by storages when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")
