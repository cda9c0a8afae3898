package github

import (
	"context"

	"emperror.dev/errors"
)

// GetCollaboratorPermission returns the user's permission tier on the
// repository: admin, write, read or none.
func (c *client) GetCollaboratorPermission(ctx context.Context, owner, repo, user string) (string, error) {
	level, _, err := c.repositories.GetPermissionLevel(ctx, owner, repo, user)
	if err != nil {
		return "", errors.WrapIff(err, "getting permission of %s on %s/%s", user, owner, repo)
	}
	return level.GetPermission(), nil
}
