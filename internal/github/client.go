package github

import (
	"context"
	"net/http"
	"time"

	"emperror.dev/errors"
	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// RepositoriesAdapter is the subset of the go-github repositories service the
// audit reads from.
type RepositoriesAdapter interface {
	ListByOrg(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	ListTeams(ctx context.Context, owner, repo string, opts *gh.ListOptions) ([]*gh.Team, *gh.Response, error)
	GetPermissionLevel(ctx context.Context, owner, repo, user string) (*gh.RepositoryPermissionLevel, *gh.Response, error)
}

type Client interface {
	ListAllRepos(ctx context.Context, org string) ([]*gh.Repository, error)
	GetRepo(ctx context.Context, owner, name string) (*gh.Repository, error)
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
	ListRepoTeams(ctx context.Context, owner, repo string) ([]*gh.Team, error)
	GetCollaboratorPermission(ctx context.Context, owner, repo, user string) (string, error)
}

type client struct {
	repositories RepositoriesAdapter
}

type options struct {
	baseURL string
}

type Option func(*options)

// WithBaseURL points the client at a GitHub Enterprise Server API.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// loggingTransport logs one debug line per API request.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	entry := logrus.WithFields(logrus.Fields{
		"method":   req.Method,
		"url":      req.URL.String(),
		"duration": time.Since(start).Truncate(time.Millisecond),
	})
	if err != nil {
		entry.WithError(err).Debug("github api request failed")
		return resp, err
	}
	entry.WithField("status", resp.StatusCode).Debug("github api request")
	return resp, nil
}

func newTransport(token string) http.RoundTripper {
	var transport http.RoundTripper = &loggingTransport{base: http.DefaultTransport}
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}
	return transport
}

func New(token string, opts ...Option) (Client, error) {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}

	ghClient := gh.NewClient(&http.Client{Transport: newTransport(token)})
	if o.baseURL != "" {
		var err error
		ghClient, err = ghClient.WithEnterpriseURLs(o.baseURL, o.baseURL)
		if err != nil {
			return nil, errors.WrapIff(err, "invalid GitHub API URL %q", o.baseURL)
		}
	}

	return &client{
		repositories: ghClient.Repositories,
	}, nil
}
