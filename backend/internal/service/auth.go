package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itchan-dev/signup/shared/domain"
	internal_errors "github.com/itchan-dev/signup/shared/errors"
	"github.com/itchan-dev/signup/shared/logger"
)

const MsgEmailTaken = "Email is already in use"

type AuthStorage interface {
	SaveUser(ctx context.Context, user domain.User) error
}

type AuthService interface {
	Register(ctx context.Context, creds domain.Credentials) (domain.User, error)
}

type Auth struct {
	storage    AuthStorage
	bcryptCost int
	now        func() time.Time
}

func NewAuth(storage AuthStorage, bcryptCost int) *Auth {
	return &Auth{storage: storage, bcryptCost: bcryptCost, now: time.Now}
}

// Register stores a new user. Emails are compared case-insensitively; a
// duplicate is reported as a 409 ErrorWithStatusCode.
func (a *Auth) Register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	email := strings.ToLower(creds.Email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return domain.User{}, internal_errors.BadRequest("Password is too long")
	}
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user := domain.User{
		Id:        uuid.NewString(),
		Email:     email,
		PassHash:  string(passHash),
		CreatedAt: a.now().UTC(),
	}
	if err := a.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.User{}, internal_errors.Conflict(MsgEmailTaken)
		}
		return domain.User{}, err
	}
	return user, nil
}
