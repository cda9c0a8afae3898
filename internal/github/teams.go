package github

import (
	"context"

	"emperror.dev/errors"
	gh "github.com/google/go-github/v80/github"
)

// ListRepoTeams returns all teams with access to the repository. Each team's
// Permission holds its tier on this repository.
func (c *client) ListRepoTeams(ctx context.Context, owner, repo string) ([]*gh.Team, error) {
	var allTeams []*gh.Team
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		teams, resp, err := c.repositories.ListTeams(ctx, owner, repo, opts)
		if err != nil {
			return nil, errors.WrapIff(err, "listing teams of %s/%s", owner, repo)
		}

		allTeams = append(allTeams, teams...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allTeams, nil
}
