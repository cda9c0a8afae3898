package service

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tracker-tv/codeowners-audit/internal/codeowners"
	githubMocks "github.com/tracker-tv/codeowners-audit/internal/github/mocks"
	"github.com/tracker-tv/codeowners-audit/models"
)

func TestResolve_Team(t *testing.T) {
	tests := []struct {
		permission string
		want       models.AccessStatus
	}{
		{permission: "admin", want: models.AccessGranted},
		{permission: "push", want: models.AccessGranted},
		{permission: "maintain", want: models.AccessDenied},
		{permission: "triage", want: models.AccessDenied},
		{permission: "pull", want: models.AccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.permission, func(t *testing.T) {
			ctx := context.Background()
			mockClient := githubMocks.NewMockClient(t)

			mockClient.
				EXPECT().
				ListRepoTeams(mock.Anything, "org", "repo").
				Once().
				Return([]*gh.Team{
					{Slug: gh.Ptr("other"), Permission: gh.Ptr("admin")},
					{Slug: gh.Ptr("infra-team"), Permission: gh.Ptr(tt.permission)},
				}, nil)

			svc := NewPermissionService(mockClient)
			result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@org/infra-team"))

			assert.Equal(t, tt.want, result.Status)
			assert.Equal(t, tt.permission, result.Permission)
			assert.Equal(t, tt.want == models.AccessGranted, result.HasWrite())
			assert.NoError(t, result.Err)
		})
	}
}

func TestResolve_TeamSlugCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListRepoTeams(mock.Anything, "org", "repo").
		Once().
		Return([]*gh.Team{{Slug: gh.Ptr("team-x"), Permission: gh.Ptr("push")}}, nil)

	svc := NewPermissionService(mockClient)
	result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@Org/Team-X"))

	assert.True(t, result.HasWrite())
}

func TestResolve_TeamNotFound(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListRepoTeams(mock.Anything, "org", "repo").
		Once().
		Return([]*gh.Team{{Slug: gh.Ptr("other"), Permission: gh.Ptr("admin")}}, nil)

	svc := NewPermissionService(mockClient)
	result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@org/ghost-team"))

	assert.Equal(t, models.AccessDenied, result.Status)
	assert.Empty(t, result.Permission)
	assert.False(t, result.HasWrite())
}

func TestResolve_TeamListError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListRepoTeams(mock.Anything, "org", "repo").
		Once().
		Return(nil, errors.New("forbidden"))

	svc := NewPermissionService(mockClient)
	result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@org/infra-team"))

	assert.Equal(t, models.AccessUnresolved, result.Status)
	assert.EqualError(t, result.Err, "forbidden")
	assert.False(t, result.HasWrite())
}

func TestResolve_Collaborator(t *testing.T) {
	tests := []struct {
		permission string
		want       models.AccessStatus
	}{
		{permission: "admin", want: models.AccessGranted},
		{permission: "write", want: models.AccessGranted},
		{permission: "read", want: models.AccessDenied},
		{permission: "none", want: models.AccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.permission, func(t *testing.T) {
			ctx := context.Background()
			mockClient := githubMocks.NewMockClient(t)

			mockClient.
				EXPECT().
				GetCollaboratorPermission(mock.Anything, "org", "repo", "alice").
				Once().
				Return(tt.permission, nil)

			svc := NewPermissionService(mockClient)
			result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@alice"))

			assert.Equal(t, tt.want, result.Status)
			assert.Equal(t, tt.permission, result.Permission)
		})
	}
}

func TestResolve_CollaboratorLookupError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetCollaboratorPermission(mock.Anything, "org", "repo", "ghost").
		Once().
		Return("", errors.New("404 Not Found"))

	svc := NewPermissionService(mockClient)
	result := svc.Resolve(ctx, testRepo, codeowners.ParseOwner("@ghost"))

	assert.Equal(t, models.AccessUnresolved, result.Status)
	assert.Error(t, result.Err)
	assert.False(t, result.HasWrite())
}
