// Package dependencyversion renders the resolved version of a named package
// from a repository's Pipfile.lock.
package dependencyversion

import (
	"context"

	"github.com/guswynn/shields/pkg/badge"
	"github.com/guswynn/shields/pkg/pipenv"
)

// DefaultLabel is the badge label when no package name is available.
const DefaultLabel = "dependency"

// Params identifies the repository and the package to look up.
type Params struct {
	User        string
	Repo        string
	Branch      string
	Kind        pipenv.Kind
	PackageName string
}

// RenderParams is the input to Render. Version and Ref are mutually
// exclusive; Version wins when both are set.
type RenderParams struct {
	Dependency string
	Version    string
	Ref        string
}

// Handler serves dependency-version badges.
type Handler struct {
	fetcher pipenv.LockfileFetcher
}

func New(fetcher pipenv.LockfileFetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// Handle fetches the lockfile and renders the resolved version (or VCS ref)
// of the named package. The lockfile sections hold the fully resolved set,
// so transitive dependencies resolve like direct ones. A package absent
// from the selected section yields a pipenv.NotFoundError.
func (h *Handler) Handle(ctx context.Context, params Params) (badge.Badge, error) {
	lockfile, err := h.fetcher.Fetch(ctx, pipenv.RepoCoordinates{
		User:   params.User,
		Repo:   params.Repo,
		Branch: params.Branch,
	})
	if err != nil {
		return badge.Badge{}, err
	}

	pkg, err := lockfile.Dependency(params.PackageName, params.Kind)
	if err != nil {
		return badge.Badge{}, err
	}

	return Render(RenderParams{
		Dependency: params.PackageName,
		Version:    pkg.ResolvedVersion(),
		Ref:        pkg.Ref,
	}), nil
}

// Render builds the badge without any I/O. The color is a fixed
// informative blue, not derived from the version.
func Render(params RenderParams) badge.Badge {
	label := params.Dependency
	if label == "" {
		label = DefaultLabel
	}
	message := params.Ref
	if params.Version != "" {
		message = badge.AddV(params.Version)
	}
	return badge.Badge{
		Label:   label,
		Message: message,
		Color:   badge.ColorBlue,
	}
}
