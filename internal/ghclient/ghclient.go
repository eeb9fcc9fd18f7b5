// Package ghclient provides a minimal GitHub API client used to upgrade
// the installed bundle from its canonical repository.
package ghclient

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// Client wraps the go-github client.
type Client struct {
	gh            *github.Client
	authenticated bool
}

// New creates a new GitHub client.
// Token resolution order: GITHUB_TOKEN, GH_TOKEN, gh CLI config, unauthenticated.
func New() *Client {
	token := getToken()

	var httpClient *http.Client
	authenticated := false

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
		authenticated = true
	}

	return &Client{
		gh:            github.NewClient(httpClient),
		authenticated: authenticated,
	}
}

// IsAuthenticated returns true if the client has a token.
func (c *Client) IsAuthenticated() bool {
	return c.authenticated
}

// GetContents fetches a file's content from a repository at ref.
func (c *Client) GetContents(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}

	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get contents: %w", err)
	}

	if fileContent == nil {
		return nil, fmt.Errorf("path is a directory, not a file")
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	return []byte(content), nil
}

// ListContents lists directory contents in a repository at ref.
func (c *Client) ListContents(ctx context.Context, owner, repo, path, ref string) ([]*github.RepositoryContent, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}

	_, dirContents, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}

	return dirContents, nil
}

// getToken attempts to get a GitHub token from various sources
func getToken() string {
	// 1. GITHUB_TOKEN env var
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	// 2. GH_TOKEN env var (gh CLI compat)
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	// 3. Try gh CLI config
	if token := readGhToken(); token != "" {
		return token
	}

	// 4. Unauthenticated (60 req/hr)
	return ""
}

// ghHostsConfig represents the gh CLI hosts.yml config
type ghHostsConfig map[string]struct {
	OAuthToken string `yaml:"oauth_token"`
}

// readGhToken reads the GitHub token from gh CLI config
func readGhToken() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return readGhTokenFrom(filepath.Join(homeDir, ".config", "gh", "hosts.yml"))
}

// readGhTokenFrom reads the github.com token from a gh hosts.yml file
func readGhTokenFrom(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var hosts ghHostsConfig
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return ""
	}

	if host, ok := hosts["github.com"]; ok {
		return host.OAuthToken
	}
	return ""
}
