package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tracker-tv/codeowners-audit/internal/github"
	"github.com/tracker-tv/codeowners-audit/models"
)

// Permission tiers that allow pushing. Teams and collaborators use different
// names for the write tier.
var (
	teamWritePermissions         = []string{"admin", "push"}
	collaboratorWritePermissions = []string{"admin", "write"}
)

type PermissionService interface {
	Resolve(ctx context.Context, repo models.Repository, owner models.Owner) models.AccessResult
}

type permissionService struct {
	gh github.Client
}

func NewPermissionService(ghClient github.Client) PermissionService {
	return &permissionService{gh: ghClient}
}

func (s *permissionService) Resolve(ctx context.Context, repo models.Repository, owner models.Owner) models.AccessResult {
	if owner.IsTeam() {
		return s.resolveTeam(ctx, repo, owner)
	}
	return s.resolveCollaborator(ctx, repo, owner)
}

func (s *permissionService) resolveTeam(ctx context.Context, repo models.Repository, owner models.Owner) models.AccessResult {
	teams, err := s.gh.ListRepoTeams(ctx, repo.Owner, repo.Name)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"repo": repo.FullName,
			"team": owner.Slug,
		}).WithError(err).Warn("error checking team")
		return models.AccessResult{Owner: owner, Status: models.AccessUnresolved, Err: err}
	}

	for _, team := range teams {
		if !strings.EqualFold(team.GetSlug(), owner.Slug) {
			continue
		}

		permission := team.GetPermission()
		return models.AccessResult{
			Owner:      owner,
			Status:     statusFor(permission, teamWritePermissions),
			Permission: permission,
		}
	}

	logrus.WithFields(logrus.Fields{
		"repo": repo.FullName,
		"team": owner.Slug,
	}).Debug("team has no access to repository")
	return models.AccessResult{Owner: owner, Status: models.AccessDenied}
}

func (s *permissionService) resolveCollaborator(ctx context.Context, repo models.Repository, owner models.Owner) models.AccessResult {
	permission, err := s.gh.GetCollaboratorPermission(ctx, repo.Owner, repo.Name, owner.Login)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"repo": repo.FullName,
			"user": owner.Login,
		}).WithError(err).Debug("collaborator permission lookup failed")
		return models.AccessResult{Owner: owner, Status: models.AccessUnresolved, Err: err}
	}

	return models.AccessResult{
		Owner:      owner,
		Status:     statusFor(permission, collaboratorWritePermissions),
		Permission: permission,
	}
}

func statusFor(permission string, writeTiers []string) models.AccessStatus {
	for _, tier := range writeTiers {
		if permission == tier {
			return models.AccessGranted
		}
	}
	return models.AccessDenied
}
