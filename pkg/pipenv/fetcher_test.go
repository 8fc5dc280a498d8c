//go:build unit
// +build unit

package pipenv

import (
	"context"
	"errors"
	"testing"

	"github.com/guswynn/shields/pkg/adapters/github"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := github.NewMockClient(ctrl)
	fetcher := NewFetcher(mockClient)

	ctx := context.Background()
	mockClient.EXPECT().GetFileContent(ctx, github.GetFileContentParams{
		Owner: "metabolize",
		Repo:  "rq-dashboard-on-heroku",
		Path:  "Pipfile.lock",
		Ref:   "main",
	}).Return([]byte(`{"_meta": {"requires": {"python_version": "3.7"}}, "default": {}}`), nil)

	lockfile, err := fetcher.Fetch(ctx, RepoCoordinates{
		User:   "metabolize",
		Repo:   "rq-dashboard-on-heroku",
		Branch: "main",
	})
	require.NoError(t, err)
	require.Equal(t, "3.7", lockfile.Meta.Requires.PythonVersion)
}

func TestFetch_DefaultBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := github.NewMockClient(ctrl)
	fetcher := NewFetcher(mockClient)

	ctx := context.Background()

	// No branch in the coordinates means an empty ref on the API call,
	// which resolves to the repository's default branch server-side.
	mockClient.EXPECT().GetFileContent(ctx, github.GetFileContentParams{
		Owner: "owner1",
		Repo:  "repo1",
		Path:  "Pipfile.lock",
		Ref:   "",
	}).Return([]byte(`{"_meta": {"requires": {}}, "default": {}}`), nil)

	_, err := fetcher.Fetch(ctx, RepoCoordinates{User: "owner1", Repo: "repo1"})
	require.NoError(t, err)
}

func TestFetch_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := github.NewMockClient(ctrl)
	fetcher := NewFetcher(mockClient)

	ctx := context.Background()
	fetchErr := errors.New("fetch error")
	mockClient.EXPECT().GetFileContent(ctx, gomock.Any()).Return(nil, fetchErr)

	_, err := fetcher.Fetch(ctx, RepoCoordinates{User: "owner1", Repo: "repo1"})
	require.ErrorIs(t, err, fetchErr)
}

func TestFetch_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := github.NewMockClient(ctrl)
	fetcher := NewFetcher(mockClient)

	ctx := context.Background()
	mockClient.EXPECT().GetFileContent(ctx, gomock.Any()).Return([]byte(`{"default": {}}`), nil)

	_, err := fetcher.Fetch(ctx, RepoCoordinates{User: "owner1", Repo: "repo1"})
	require.ErrorIs(t, err, ErrInvalidLockfile)
}
