package github

import (
	"context"

	"emperror.dev/errors"
	gh "github.com/google/go-github/v80/github"
)

// GetFileContent returns the decoded content of a single file. An empty ref
// reads from the default branch.
func (c *client) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", errors.Errorf("%s is not a file", path)
	}

	decoded, err := file.GetContent()
	if err != nil {
		return "", errors.WrapIff(err, "decoding %s", path)
	}
	return decoded, nil
}
