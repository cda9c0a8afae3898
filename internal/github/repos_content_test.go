package github

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tracker-tv/codeowners-audit/internal/github/mocks"
)

func TestGetFileContent_Success(t *testing.T) {
	ctx := context.Background()
	repoSvc := mocks.NewMockRepositoriesAdapter(t)

	fileContent := "* @global-owner\n/src/ @alice\n"
	encodedContent := base64.StdEncoding.EncodeToString([]byte(fileContent))

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", ".github/CODEOWNERS",
			mock.MatchedBy(func(opts *gh.RepositoryContentGetOptions) bool {
				return opts.Ref == "main"
			}),
		).
		Once().
		Return(
			&gh.RepositoryContent{
				Content:  gh.Ptr(encodedContent),
				Encoding: gh.Ptr("base64"),
			},
			nil,
			&gh.Response{},
			nil,
		)

	c := &client{repositories: repoSvc}

	content, err := c.GetFileContent(ctx, "org-name", "repo-name", ".github/CODEOWNERS", "main")

	assert.NoError(t, err)
	assert.Equal(t, fileContent, content)
}

func TestGetFileContent_NotFound(t *testing.T) {
	ctx := context.Background()
	repoSvc := mocks.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", "CODEOWNERS", mock.Anything).
		Once().
		Return(nil, nil, nil, errors.New("not found"))

	c := &client{repositories: repoSvc}

	content, err := c.GetFileContent(ctx, "org-name", "repo-name", "CODEOWNERS", "")

	assert.Error(t, err)
	assert.Empty(t, content)
}

func TestGetFileContent_Directory(t *testing.T) {
	ctx := context.Background()
	repoSvc := mocks.NewMockRepositoriesAdapter(t)

	dirContents := []*gh.RepositoryContent{
		{Name: gh.Ptr("CODEOWNERS"), Path: gh.Ptr("docs/CODEOWNERS/CODEOWNERS")},
	}

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", "docs/CODEOWNERS", mock.Anything).
		Once().
		Return(nil, dirContents, &gh.Response{}, nil)

	c := &client{repositories: repoSvc}

	content, err := c.GetFileContent(ctx, "org-name", "repo-name", "docs/CODEOWNERS", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a file")
	assert.Empty(t, content)
}

func TestGetFileContent_UnsupportedEncoding(t *testing.T) {
	ctx := context.Background()
	repoSvc := mocks.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", "CODEOWNERS", mock.Anything).
		Once().
		Return(
			&gh.RepositoryContent{
				Content:  gh.Ptr("???"),
				Encoding: gh.Ptr("rot13"),
			},
			nil,
			&gh.Response{},
			nil,
		)

	c := &client{repositories: repoSvc}

	content, err := c.GetFileContent(ctx, "org-name", "repo-name", "CODEOWNERS", "")

	assert.Error(t, err)
	assert.Empty(t, content)
}
