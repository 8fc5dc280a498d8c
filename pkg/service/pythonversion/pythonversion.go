// Package pythonversion renders the Python interpreter version pinned in a
// repository's Pipfile.lock.
package pythonversion

import (
	"context"

	"github.com/guswynn/shields/pkg/badge"
	"github.com/guswynn/shields/pkg/pipenv"
)

// DefaultLabel is the badge label when no branch qualifies it.
const DefaultLabel = "python"

// Params identifies the repository to read from.
type Params struct {
	User   string
	Repo   string
	Branch string
}

// RenderParams is the input to Render.
type RenderParams struct {
	Version string
	Branch  string
}

// Handler serves python-version badges.
type Handler struct {
	fetcher pipenv.LockfileFetcher
}

func New(fetcher pipenv.LockfileFetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// Handle fetches the lockfile and renders the pinned interpreter version.
// A lockfile without _meta.requires.python_version yields a
// pipenv.NotFoundError with message "version not specified".
func (h *Handler) Handle(ctx context.Context, params Params) (badge.Badge, error) {
	lockfile, err := h.fetcher.Fetch(ctx, pipenv.RepoCoordinates{
		User:   params.User,
		Repo:   params.Repo,
		Branch: params.Branch,
	})
	if err != nil {
		return badge.Badge{}, err
	}

	version, err := lockfile.PythonVersion()
	if err != nil {
		return badge.Badge{}, err
	}

	return Render(RenderParams{Version: version, Branch: params.Branch}), nil
}

// Render builds the badge without any I/O. Python interpreter versions are
// not semver-styled, so the message is never "v"-prefixed.
func Render(params RenderParams) badge.Badge {
	return badge.RenderVersion(badge.VersionParams{
		Version:      params.Version,
		DefaultLabel: DefaultLabel,
		Tag:          params.Branch,
	})
}
