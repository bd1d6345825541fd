// Package oauth builds third-party authorization redirects.
package oauth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// AuthorizeURLPrefix is what every GitHub authorization redirect starts with.
const AuthorizeURLPrefix = "https://github.com/login/oauth/authorize?client_id="

// GitHubProvider redirects the browser to GitHub's consent screen. Only the
// public client id is needed; the code exchange happens elsewhere.
type GitHubProvider struct {
	ClientID string
	config   *oauth2.Config
}

func NewGitHub(clientID string) *GitHubProvider {
	return &GitHubProvider{
		ClientID: clientID,
		config: &oauth2.Config{
			ClientID: clientID,
			Endpoint: github.Endpoint,
		},
	}
}

func (p *GitHubProvider) Name() string {
	return "github"
}

// AuthCodeURL returns the authorization URL. The client_id parameter always
// comes first; state is appended when non-empty.
func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}
