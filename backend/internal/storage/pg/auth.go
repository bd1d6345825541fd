package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/itchan-dev/signup/shared/domain"
	sharedpg "github.com/itchan-dev/signup/shared/storage/pg"
)

const queryTimeout = 5 * time.Second

// SaveUser inserts user. The unique constraint on email decides duplicates,
// so concurrent registrations of one address cannot both succeed.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return saveUser(ctx, tx, user)
	})
}

func saveUser(ctx context.Context, q sharedpg.Querier, user domain.User) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO users (id, email, pass_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.Id, user.Email, user.PassHash, user.CreatedAt,
	)
	if sharedpg.IsUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
