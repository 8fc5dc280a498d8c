package pipenv

import (
	"context"
	"fmt"

	"github.com/guswynn/shields/pkg/adapters/github"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fetcher.go -destination=mock.gen.go -package=pipenv

// LockfileName is the file fetched from every target repository.
const LockfileName = "Pipfile.lock"

// RepoCoordinates identifies a GitHub repository and an optional ref.
// An empty Branch means the repository's default branch.
type RepoCoordinates struct {
	User   string
	Repo   string
	Branch string
}

// LockfileFetcher defines the interface for fetching a repository's
// validated Pipfile.lock.
type LockfileFetcher interface {
	Fetch(ctx context.Context, coords RepoCoordinates) (*Lockfile, error)
}

// fetcher fetches lockfiles using the GitHub adapter.
type fetcher struct {
	client github.Client
}

// Ensure fetcher implements LockfileFetcher.
var _ LockfileFetcher = (*fetcher)(nil)

func NewFetcher(client github.Client) LockfileFetcher {
	return &fetcher{client: client}
}

// Fetch retrieves and decodes Pipfile.lock from the given repository.
// Fetch and validation failures propagate to the caller unchanged.
func (f *fetcher) Fetch(ctx context.Context, coords RepoCoordinates) (*Lockfile, error) {
	content, err := f.client.GetFileContent(ctx, github.GetFileContentParams{
		Owner: coords.User,
		Repo:  coords.Repo,
		Path:  LockfileName,
		Ref:   coords.Branch,
	})
	if err != nil {
		return nil, err
	}
	lockfile, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decoding %s/%s %s: %w", coords.User, coords.Repo, LockfileName, err)
	}
	return lockfile, nil
}
