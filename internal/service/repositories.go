package service

import (
	"context"
	"strings"

	"emperror.dev/errors"
	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/codeowners-audit/internal/github"
	"github.com/tracker-tv/codeowners-audit/models"
)

// ErrInvalidRepoName is returned for repository names not of the form owner/name.
const ErrInvalidRepoName = errors.Sentinel("repository must be given as owner/name")

type RepositoryService interface {
	ListAll(ctx context.Context, org string) ([]models.Repository, error)
	Get(ctx context.Context, fullName string) (models.Repository, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

func (s *repositoriesService) ListAll(ctx context.Context, org string) ([]models.Repository, error) {
	repos, err := s.gh.ListAllRepos(ctx, org)
	if err != nil {
		return nil, err
	}

	result := make([]models.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil {
			continue
		}

		result = append(result, toRepository(repo))
	}

	return result, nil
}

func (s *repositoriesService) Get(ctx context.Context, fullName string) (models.Repository, error) {
	owner, name, err := SplitFullName(fullName)
	if err != nil {
		return models.Repository{}, err
	}

	repo, err := s.gh.GetRepo(ctx, owner, name)
	if err != nil {
		return models.Repository{}, err
	}
	if repo == nil {
		return models.Repository{}, errors.Errorf("repository %s not found", fullName)
	}

	return toRepository(repo), nil
}

// SplitFullName splits "owner/name" into its parts.
func SplitFullName(fullName string) (string, string, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.WithDetails(ErrInvalidRepoName, "repository", fullName)
	}
	return owner, name, nil
}

func toRepository(repo *gh.Repository) models.Repository {
	owner := repo.GetOwner().GetLogin()
	if owner == "" {
		owner, _, _ = strings.Cut(repo.GetFullName(), "/")
	}

	return models.Repository{
		Owner:         owner,
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
		Archived:      repo.GetArchived(),
	}
}
