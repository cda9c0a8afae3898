package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tracker-tv/codeowners-audit/models"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

type rootOptions struct {
	repo    string
	org     string
	quiet   bool
	debug   bool
	noColor bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "codeowners-audit",
		Short: "Check that every CODEOWNERS owner has write access to its repository",
		Long: `codeowners-audit reads the CODEOWNERS file of GitHub repositories and reports
every listed user or team that lacks write access to the repository.

Without --repo, every repository of the configured organization is checked.
Archived repositories are skipped.

Environment:
  GH_TOKEN     GitHub token (required)
  GH_ORG       organization to audit when --repo is not given
  GH_API_URL   GitHub Enterprise Server API URL (optional)

Examples:
  # Audit the whole organization
  GH_TOKEN=... GH_ORG=my-org codeowners-audit

  # Audit one repository, findings only
  codeowners-audit --repo my-org/my-repo --quiet`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(cmd.ErrOrStderr(), opts.debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "Check a single repository (format: org/repo)")
	cmd.Flags().StringVar(&opts.org, "org", "", "Organization to check (overrides GH_ORG)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print findings")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log GitHub API calls and swallowed lookup errors to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newOwnersCmd(opts), newVersionCmd())

	return cmd
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func runAudit(ctx context.Context, out io.Writer, opts *rootOptions) error {
	a, err := newApp(out, opts)
	if err != nil {
		return err
	}

	target := models.Target{Org: a.cfg.Org, FullName: opts.repo}
	if !target.SingleRepo() {
		if err := a.cfg.RequireOrg(); err != nil {
			return err
		}
	}

	_, err = a.coordinator.Run(ctx, target)
	return err
}
