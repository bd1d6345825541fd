package setup

import (
	"fmt"

	"github.com/itchan-dev/signup/frontend/internal/apiclient"
	"github.com/itchan-dev/signup/frontend/internal/handler"
	"github.com/itchan-dev/signup/frontend/internal/oauth"
	"github.com/itchan-dev/signup/frontend/web"
	"github.com/itchan-dev/signup/shared/config"
)

type Dependencies struct {
	Handler *handler.Handler
	Config  *config.Config
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates, err := web.LoadTemplates(web.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	apiClient := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)
	github := oauth.NewGitHub(cfg.GitHub.ClientID)

	return &Dependencies{
		Handler: handler.New(templates, apiClient, github, cfg.Frontend.SecureCookies),
		Config:  cfg,
	}, nil
}
