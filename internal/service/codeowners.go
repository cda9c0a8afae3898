package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/tracker-tv/codeowners-audit/internal/codeowners"
	"github.com/tracker-tv/codeowners-audit/internal/github"
	"github.com/tracker-tv/codeowners-audit/models"
)

type CodeownersService interface {
	// Locate returns the first CODEOWNERS file found among the candidate
	// paths. found is false when none of them can be read.
	Locate(ctx context.Context, repo models.Repository) (file models.CodeownersFile, found bool)
}

type codeownersService struct {
	gh github.Client
}

func NewCodeownersService(ghClient github.Client) CodeownersService {
	return &codeownersService{gh: ghClient}
}

func (s *codeownersService) Locate(ctx context.Context, repo models.Repository) (models.CodeownersFile, bool) {
	for _, path := range codeowners.Candidates {
		content, err := s.gh.GetFileContent(ctx, repo.Owner, repo.Name, path, repo.DefaultBranch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"repo": repo.FullName,
				"path": path,
			}).WithError(err).Debug("CODEOWNERS not readable at path")
			continue
		}

		return models.CodeownersFile{Path: path, Content: content}, true
	}

	return models.CodeownersFile{}, false
}
