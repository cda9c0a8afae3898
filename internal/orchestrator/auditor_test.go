package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	serviceMocks "github.com/tracker-tv/codeowners-audit/internal/service/mocks"
	"github.com/tracker-tv/codeowners-audit/models"
)

var activeRepo = models.Repository{Owner: "org", Name: "repo", FullName: "org/repo", DefaultBranch: "main"}

func ownerNamed(raw string) any {
	return mock.MatchedBy(func(o models.Owner) bool { return o.Raw == raw })
}

func TestNewAuditor(t *testing.T) {
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)

	assert.NotNil(t, auditor)
	assert.Equal(t, codeownersSvc, auditor.codeowners)
	assert.Equal(t, permissionSvc, auditor.permissions)
}

func TestAudit_FlagsOnlyOwnersWithoutWriteAccess(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{Path: ".github/CODEOWNERS", Content: "/src/ @alice @org/infra-team\n"}, true)

	permissionSvc.
		EXPECT().
		Resolve(mock.Anything, activeRepo, ownerNamed("@alice")).
		RunAndReturn(func(_ context.Context, _ models.Repository, o models.Owner) models.AccessResult {
			return models.AccessResult{Owner: o, Status: models.AccessDenied, Permission: "read"}
		}).
		Once()

	permissionSvc.
		EXPECT().
		Resolve(mock.Anything, activeRepo, ownerNamed("@org/infra-team")).
		RunAndReturn(func(_ context.Context, _ models.Repository, o models.Owner) models.AccessResult {
			return models.AccessResult{Owner: o, Status: models.AccessGranted, Permission: "push"}
		}).
		Once()

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	findings := auditor.Audit(ctx, activeRepo)

	require.Len(t, findings, 1)
	assert.Equal(t, models.FindingNoWriteAccess, findings[0].Kind)
	assert.Equal(t, "@alice", findings[0].Owner.Raw)
	assert.Equal(t, "alice", findings[0].Owner.Login)
	assert.Equal(t, "/src/", findings[0].Path)
	assert.Equal(t, "org/repo", findings[0].Repository.FullName)
	assert.False(t, findings[0].Access.HasWrite())
	assert.Equal(t, findings, reporter.findings)
	assert.Equal(t, []string{"Checking repository: org/repo"}, reporter.progress)
}

func TestAudit_SkipsArchivedRepos(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	archived := models.Repository{Owner: "org", Name: "old", FullName: "org/old", Archived: true}

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	findings := auditor.Audit(ctx, archived)

	assert.Empty(t, findings)
	assert.Empty(t, reporter.findings)
	assert.Equal(t, []string{"Skipping archived repo: org/old"}, reporter.progress)
}

func TestAudit_MissingCodeowners(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{}, false)

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	findings := auditor.Audit(ctx, activeRepo)

	require.Len(t, findings, 1)
	assert.Equal(t, models.FindingMissingCodeowners, findings[0].Kind)
	assert.Equal(t, "org/repo", findings[0].Repository.FullName)
	assert.Equal(t, findings, reporter.findings)
}

func TestAudit_EmptyCodeownersCountsAsMissing(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{Path: "CODEOWNERS"}, true)

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	findings := auditor.Audit(ctx, activeRepo)

	require.Len(t, findings, 1)
	assert.Equal(t, models.FindingMissingCodeowners, findings[0].Kind)
}

func TestAudit_EvaluatesEveryOwnerIndependently(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	content := "# owners\n" +
		"*        @bob\n" +
		"/docs/   @bob @org/writers\n" +
		"/empty/\n"

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{Path: "CODEOWNERS", Content: content}, true)

	permissionSvc.
		EXPECT().
		Resolve(mock.Anything, activeRepo, ownerNamed("@bob")).
		RunAndReturn(func(_ context.Context, _ models.Repository, o models.Owner) models.AccessResult {
			return models.AccessResult{Owner: o, Status: models.AccessUnresolved, Err: errors.New("404 Not Found")}
		}).
		Times(2)

	permissionSvc.
		EXPECT().
		Resolve(mock.Anything, activeRepo, ownerNamed("@org/writers")).
		RunAndReturn(func(_ context.Context, _ models.Repository, o models.Owner) models.AccessResult {
			return models.AccessResult{Owner: o, Status: models.AccessDenied}
		}).
		Once()

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	findings := auditor.Audit(ctx, activeRepo)

	require.Len(t, findings, 3)
	assert.Equal(t, "*", findings[0].Path)
	assert.Equal(t, "@bob", findings[0].Owner.Raw)
	assert.Equal(t, "/docs/", findings[1].Path)
	assert.Equal(t, "@bob", findings[1].Owner.Raw)
	assert.Equal(t, "/docs/", findings[2].Path)
	assert.Equal(t, "@org/writers", findings[2].Owner.Raw)
	assert.True(t, findings[2].Owner.IsTeam())
}

func TestExplain(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)
	reporter := &recordingReporter{}

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{Path: ".github/CODEOWNERS", Content: "* @default\n/src/ @alice\n"}, true)

	permissionSvc.
		EXPECT().
		Resolve(mock.Anything, activeRepo, ownerNamed("@alice")).
		RunAndReturn(func(_ context.Context, _ models.Repository, o models.Owner) models.AccessResult {
			return models.AccessResult{Owner: o, Status: models.AccessGranted, Permission: "write"}
		}).
		Once()

	auditor := NewAuditor(codeownersSvc, permissionSvc, reporter)
	ownership, ok := auditor.Explain(ctx, activeRepo, "src/main.go")

	require.True(t, ok)
	assert.Equal(t, "/src/", ownership.Rule.Pattern)
	assert.Equal(t, 2, ownership.Rule.Line)
	require.Len(t, ownership.Results, 1)
	assert.True(t, ownership.Results[0].HasWrite())
	assert.Empty(t, reporter.findings)
}

func TestExplain_NoMatchingRule(t *testing.T) {
	ctx := context.Background()
	codeownersSvc := serviceMocks.NewMockCodeownersService(t)
	permissionSvc := serviceMocks.NewMockPermissionService(t)

	codeownersSvc.
		EXPECT().
		Locate(mock.Anything, activeRepo).
		Once().
		Return(models.CodeownersFile{Path: "CODEOWNERS", Content: "/src/ @alice\n"}, true)

	auditor := NewAuditor(codeownersSvc, permissionSvc, &recordingReporter{})
	ownership, ok := auditor.Explain(ctx, activeRepo, "docs/readme.md")

	assert.False(t, ok)
	assert.Equal(t, "CODEOWNERS", ownership.File.Path)
}
