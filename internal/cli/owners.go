package cli

import (
	"github.com/spf13/cobra"
)

func newOwnersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "owners <org/repo> <path>",
		Short: "Show who owns a file and whether they can write to the repository",
		Example: `  codeowners-audit owners my-org/my-repo src/main.go
  codeowners-audit owners my-org/my-repo docs/`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}

			repo, ownership, err := a.coordinator.Explain(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			a.console.Ownership(repo, args[1], ownership.File, ownership.Rule, ownership.Results)
			return nil
		},
	}
}
