package github

import (
	"context"

	"emperror.dev/errors"
	gh "github.com/google/go-github/v80/github"
)

const perPage = 100

// ListAllRepos returns every repository of org visible to the credential, in
// the order the API lists them.
func (c *client) ListAllRepos(ctx context.Context, org string) ([]*gh.Repository, error) {
	var allRepos []*gh.Repository
	opts := &gh.RepositoryListByOrgOptions{
		Type: "all",
		ListOptions: gh.ListOptions{
			PerPage: perPage,
		},
	}

	for {
		repos, resp, err := c.repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, errors.WrapIff(err, "listing repositories of %s", org)
		}

		allRepos = append(allRepos, repos...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

func (c *client) GetRepo(ctx context.Context, owner, name string) (*gh.Repository, error) {
	repo, _, err := c.repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, errors.WrapIff(err, "getting repository %s/%s", owner, name)
	}
	return repo, nil
}
