package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v47/github"
	"github.com/stonewall-sec/auditscope/pkg/whttp"
)

// GitHubLister lists contents through the go-github client. It speaks to any
// host exposing the GitHub REST layout at Location.BaseURL.
type GitHubLister struct {
	httpClient *http.Client
}

// NewGitHubLister uses the shared whttp transport when httpClient is nil.
func NewGitHubLister(httpClient *http.Client) *GitHubLister {
	return &GitHubLister{httpClient: httpClient}
}

func (g *GitHubLister) Name() string { return BackendGitHub }

func (g *GitHubLister) List(ctx context.Context, loc Location) ([]Entry, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	hc := g.httpClient
	if hc == nil {
		hc = whttp.GetDefaultClient().StandardClient()
	}
	client := github.NewClient(hc)
	baseURL, err := url.Parse(loc.BaseURL() + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", loc.BaseURL(), err)
	}
	client.BaseURL = baseURL
	client.UserAgent = whttp.UserAgent

	file, dir, _, err := client.Repositories.GetContents(ctx, loc.Owner, loc.Repo, loc.Path,
		&github.RepositoryContentGetOptions{Ref: loc.Branch})
	if err != nil {
		return nil, classifyGitHubError(err)
	}
	if file != nil {
		return nil, fmt.Errorf("%w: %s is a file, not a directory", ErrShape, loc.Path)
	}

	entries := make([]Entry, 0, len(dir))
	for i, c := range dir {
		if c == nil || c.Name == nil || c.Size == nil {
			return nil, fmt.Errorf("%w: element %d is missing name or size", ErrShape, i)
		}
		if c.GetSize() < 0 {
			return nil, fmt.Errorf("%w: element %d (%s) has negative size", ErrShape, i, c.GetName())
		}
		entries = append(entries, Entry{
			Name:        c.GetName(),
			Type:        c.GetType(),
			DownloadURL: c.GetDownloadURL(),
			HTMLURL:     c.GetHTMLURL(),
			Size:        int64(c.GetSize()),
		})
	}
	return entries, nil
}

func classifyGitHubError(err error) error {
	var (
		respErr  *github.ErrorResponse
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		synErr   *json.SyntaxError
		typeErr  *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &respErr), errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return fmt.Errorf("%w: %v", ErrStatus, err)
	case errors.As(err, &synErr), errors.As(err, &typeErr),
		strings.Contains(err.Error(), "unmarshalling failed"):
		return fmt.Errorf("%w: %v", ErrShape, err)
	}
	return err
}
