package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/itchan-dev/signup/shared/config"
	sharedpg "github.com/itchan-dev/signup/shared/storage/pg"
)

//go:embed migrations/init.sql
var initSQL string

type Storage struct {
	db *sql.DB
}

// New connects to Postgres and makes sure the schema exists.
func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.LightweightConnectionConfig())
	if err != nil {
		return nil, err
	}
	s := &Storage{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, initSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
