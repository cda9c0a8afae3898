package orchestrator

import (
	"context"

	"emperror.dev/errors"
	"github.com/tracker-tv/codeowners-audit/internal/service"
	"github.com/tracker-tv/codeowners-audit/models"
)

// Coordinator drives the Auditor over a run's targets, one repository at a
// time.
type Coordinator struct {
	repos    service.RepositoryService
	auditor  *Auditor
	reporter Reporter
}

func NewCoordinator(repos service.RepositoryService, auditor *Auditor, reporter Reporter) *Coordinator {
	return &Coordinator{repos: repos, auditor: auditor, reporter: reporter}
}

func (c *Coordinator) Run(ctx context.Context, target models.Target) ([]models.Finding, error) {
	if target.SingleRepo() {
		return c.RunRepo(ctx, target.FullName), nil
	}
	return c.RunOrg(ctx, target.Org)
}

// RunOrg audits every repository of org in listing order. Only a failure to
// list the organization is returned as an error.
func (c *Coordinator) RunOrg(ctx context.Context, org string) ([]models.Finding, error) {
	c.reporter.Progress("Checking all repositories in organization '%s'...", org)

	repos, err := c.repos.ListAll(ctx, org)
	if err != nil {
		return nil, errors.WrapIff(err, "could not list repositories of %s", org)
	}

	var findings []models.Finding
	for _, repo := range repos {
		findings = append(findings, c.auditor.Audit(ctx, repo)...)
	}

	c.summarize(findings, len(repos))
	return findings, nil
}

// RunRepo audits a single repository given as owner/name. A repository that
// cannot be loaded is reported and ends the run without an error.
func (c *Coordinator) RunRepo(ctx context.Context, fullName string) []models.Finding {
	repo, err := c.repos.Get(ctx, fullName)
	if err != nil {
		c.reporter.Failure("Could not load repository %s: %v", fullName, err)
		return nil
	}

	findings := c.auditor.Audit(ctx, repo)
	c.summarize(findings, 1)
	return findings
}

// Explain loads fullName and describes who owns filePath in it.
func (c *Coordinator) Explain(ctx context.Context, fullName, filePath string) (models.Repository, Ownership, error) {
	repo, err := c.repos.Get(ctx, fullName)
	if err != nil {
		return models.Repository{}, Ownership{}, errors.WrapIff(err, "could not load repository %s", fullName)
	}

	ownership, ok := c.auditor.Explain(ctx, repo, filePath)
	if !ok {
		if ownership.File.Path == "" {
			return repo, ownership, errors.Errorf("CODEOWNERS file not found for %s", repo.FullName)
		}
		return repo, ownership, errors.Errorf("no CODEOWNERS rule in %s matches %s", ownership.File.Path, filePath)
	}

	return repo, ownership, nil
}

func (c *Coordinator) summarize(findings []models.Finding, repos int) {
	noun := "repositories"
	if repos == 1 {
		noun = "repository"
	}
	c.reporter.Progress("Finished: %d finding(s) across %d %s", len(findings), repos, noun)
}
