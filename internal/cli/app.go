package cli

import (
	"io"

	"github.com/tracker-tv/codeowners-audit/internal/config"
	"github.com/tracker-tv/codeowners-audit/internal/github"
	"github.com/tracker-tv/codeowners-audit/internal/orchestrator"
	"github.com/tracker-tv/codeowners-audit/internal/output"
	"github.com/tracker-tv/codeowners-audit/internal/service"
)

// app holds everything a run needs. It is built once from validated inputs
// and not modified afterwards.
type app struct {
	cfg         *config.Config
	console     *output.Console
	coordinator *orchestrator.Coordinator
}

func newApp(out io.Writer, opts *rootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.org != "" {
		cfg.Org = opts.org
	}

	var clientOpts []github.Option
	if cfg.APIURL != "" {
		clientOpts = append(clientOpts, github.WithBaseURL(cfg.APIURL))
	}
	ghClient, err := github.New(cfg.GithubToken, clientOpts...)
	if err != nil {
		return nil, err
	}

	console := output.NewConsole(out, opts.quiet, opts.noColor)
	auditor := orchestrator.NewAuditor(
		service.NewCodeownersService(ghClient),
		service.NewPermissionService(ghClient),
		console,
	)

	return &app{
		cfg:         cfg,
		console:     console,
		coordinator: orchestrator.NewCoordinator(service.NewRepositoriesService(ghClient), auditor, console),
	}, nil
}
