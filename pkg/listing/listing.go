// Package listing queries a remote directory listing (the GitHub contents
// API or a compatible host) for the documents published next to the
// curated catalog.
package listing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrStatus is returned when the listing endpoint answers with a non-2xx status.
	ErrStatus = errors.New("unexpected listing status")
	// ErrShape is returned when the listing body is not a list of file objects.
	ErrShape = errors.New("unexpected listing shape")
)

// Location points at a directory in a repository.
type Location struct {
	// APIURL overrides the API base derived from Host, e.g. for tests or proxies.
	APIURL string
	Host   string
	Owner  string
	Repo   string
	Branch string
	Path   string
}

func (l Location) Validate() error {
	if l.Owner == "" || l.Repo == "" {
		return errors.New("listing location needs an owner and a repository")
	}
	if l.APIURL == "" && l.Host == "" {
		return errors.New("listing location needs a host or an api url")
	}
	return nil
}

// BaseURL is the API root, https://api.<host> unless overridden.
func (l Location) BaseURL() string {
	if l.APIURL != "" {
		return strings.TrimSuffix(l.APIURL, "/")
	}
	return "https://api." + l.Host
}

// ContentsURL is the full listing request URL.
func (l Location) ContentsURL() string {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		l.BaseURL(), url.PathEscape(l.Owner), url.PathEscape(l.Repo), escapePath(l.Path))
	if l.Branch != "" {
		u += "?ref=" + url.QueryEscape(l.Branch)
	}
	return u
}

func (l Location) String() string {
	return fmt.Sprintf("%s/%s/%s@%s", l.Owner, l.Repo, strings.Trim(l.Path, "/"), l.Branch)
}

func escapePath(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// Entry is one item of a directory listing.
type Entry struct {
	Name        string
	Type        string
	DownloadURL string
	HTMLURL     string
	Size        int64
}

// IsFile reports whether the entry is a regular file. Listings that omit the
// type are treated as files.
func (e Entry) IsFile() bool {
	return e.Type == "" || e.Type == "file"
}

// Lister fetches a directory listing. Implementations make exactly one
// request per call and never retry.
type Lister interface {
	Name() string
	List(ctx context.Context, loc Location) ([]Entry, error)
}

const (
	BackendAPI    = "api"
	BackendGitHub = "github"
)

// New returns the lister for backend. An empty backend selects BackendAPI.
func New(backend string) (Lister, error) {
	switch strings.ToLower(backend) {
	case "", BackendAPI:
		return NewAPILister(nil), nil
	case BackendGitHub:
		return NewGitHubLister(nil), nil
	default:
		return nil, fmt.Errorf("unknown listing backend %q (available: %s, %s)", backend, BackendAPI, BackendGitHub)
	}
}
