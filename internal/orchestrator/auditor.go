package orchestrator

import (
	"context"

	"github.com/tracker-tv/codeowners-audit/internal/codeowners"
	"github.com/tracker-tv/codeowners-audit/internal/service"
	"github.com/tracker-tv/codeowners-audit/models"
)

// Reporter receives progress narration, findings and failures as they happen.
type Reporter interface {
	Progress(format string, args ...any)
	Finding(f models.Finding)
	Failure(format string, args ...any)
}

// Auditor checks a single repository's CODEOWNERS against the permissions
// its owners actually hold.
type Auditor struct {
	codeowners  service.CodeownersService
	permissions service.PermissionService
	reporter    Reporter
}

func NewAuditor(locator service.CodeownersService, permissions service.PermissionService, reporter Reporter) *Auditor {
	return &Auditor{
		codeowners:  locator,
		permissions: permissions,
		reporter:    reporter,
	}
}

// Audit reports and returns every finding for repo. Owners with write access
// produce nothing.
func (a *Auditor) Audit(ctx context.Context, repo models.Repository) []models.Finding {
	if repo.Archived {
		a.reporter.Progress("Skipping archived repo: %s", repo.FullName)
		return nil
	}

	a.reporter.Progress("Checking repository: %s", repo.FullName)

	file, found := a.codeowners.Locate(ctx, repo)
	if !found || file.Content == "" {
		return []models.Finding{a.report(models.Finding{
			Kind:       models.FindingMissingCodeowners,
			Repository: repo,
		})}
	}

	var findings []models.Finding
	for _, rule := range codeowners.Parse(file.Content) {
		for _, owner := range rule.Owners {
			access := a.permissions.Resolve(ctx, repo, owner)
			if access.HasWrite() {
				continue
			}

			findings = append(findings, a.report(models.Finding{
				Kind:       models.FindingNoWriteAccess,
				Repository: repo,
				Path:       rule.Pattern,
				Owner:      owner,
				Access:     access,
			}))
		}
	}

	return findings
}

func (a *Auditor) report(f models.Finding) models.Finding {
	a.reporter.Finding(f)
	return f
}

// Ownership describes who owns a file and what access each owner holds.
type Ownership struct {
	File    models.CodeownersFile
	Rule    models.Rule
	Results []models.AccessResult
}

// Explain resolves the rule owning filePath and the access of each of its
// owners. ok is false when the repository has no CODEOWNERS or no rule
// matches.
func (a *Auditor) Explain(ctx context.Context, repo models.Repository, filePath string) (Ownership, bool) {
	file, found := a.codeowners.Locate(ctx, repo)
	if !found {
		return Ownership{}, false
	}

	rule, ok := codeowners.Match(codeowners.Parse(file.Content), filePath)
	if !ok {
		return Ownership{File: file}, false
	}

	results := make([]models.AccessResult, 0, len(rule.Owners))
	for _, owner := range rule.Owners {
		results = append(results, a.permissions.Resolve(ctx, repo, owner))
	}

	return Ownership{File: file, Rule: rule, Results: results}, true
}
