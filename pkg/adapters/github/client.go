//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mock.gen.go -package=github
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"
)

// GetFileContentParams contains parameters for GetFileContent.
type GetFileContentParams struct {
	Owner string
	Repo  string
	Path  string
	// Ref is the branch, tag or commit to read from. Empty means the
	// repository's default branch, resolved server-side.
	Ref string
}

// Client defines the interface for interacting with GitHub.
type Client interface {
	GetFileContent(ctx context.Context, params GetFileContentParams) ([]byte, error)
}

// client implements Client using go-github.
type client struct {
	gh *github.Client
}

// New creates a new GitHub client. An empty token means anonymous access,
// which works for public repositories but with much lower rate limits.
func New(token string) Client {
	if token == "" {
		return &client{gh: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	gh := github.NewClient(oauth2.NewClient(context.Background(), ts))
	return &client{gh: gh}
}

// GetFileContent retrieves the content of a file from a GitHub repository.
func (c *client) GetFileContent(ctx context.Context, params GetFileContentParams) ([]byte, error) {
	fileContent, _, _, err := c.gh.Repositories.GetContents(
		ctx, params.Owner, params.Repo, params.Path,
		&github.RepositoryContentGetOptions{Ref: params.Ref},
	)
	if err != nil {
		return nil, err
	}
	if fileContent == nil {
		return nil, fmt.Errorf("%s is not a file", params.Path)
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

// IsNotFound reports whether err is a GitHub API 404, i.e. the repository,
// ref or file does not exist (or is not visible with the current auth).
func IsNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
