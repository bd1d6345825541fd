package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/signup/backend/internal/handler"
	"github.com/itchan-dev/signup/backend/internal/service"
	"github.com/itchan-dev/signup/backend/internal/storage/memory"
	"github.com/itchan-dev/signup/backend/internal/storage/pg"
	"github.com/itchan-dev/signup/shared/config"
	"github.com/itchan-dev/signup/shared/logger"
)

type storage interface {
	service.AuthStorage
	Cleanup() error
}

type Dependencies struct {
	Handler *handler.Handler
	Config  *config.Config
	Storage storage
}

func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var store storage
	switch cfg.Backend.Store {
	case "postgres":
		s, err := pg.New(ctx, cfg.Backend.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = s
	default:
		store = memory.New()
	}
	logger.Log.Info("storage ready", "store", cfg.Backend.Store)

	auth := service.NewAuth(store, cfg.Backend.BcryptCost)

	return &Dependencies{
		Handler: handler.New(auth),
		Config:  cfg,
		Storage: store,
	}, nil
}
