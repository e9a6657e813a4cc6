package listing

import (
	"context"
	"fmt"
	"math"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stonewall-sec/auditscope/pkg/whttp"
	"github.com/tidwall/gjson"
)

// APILister reads the contents endpoint directly and checks the JSON shape
// with gjson before mapping anything.
type APILister struct {
	client *retryablehttp.Client
}

// NewAPILister uses the shared whttp client when client is nil.
func NewAPILister(client *retryablehttp.Client) *APILister {
	return &APILister{client: client}
}

func (a *APILister) Name() string { return BackendAPI }

func (a *APILister) List(ctx context.Context, loc Location) ([]Entry, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method:  "GET",
		URL:     loc.ContentsURL(),
		Headers: []whttp.WHTTPHeader{{Name: "Accept", Value: "application/vnd.github+json"}},
	}, a.client)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrStatus, res.StatusCode, loc.ContentsURL())
	}

	return ParseEntries(res.BodyString)
}

// ParseEntries validates a contents listing body and maps it to entries.
// Any element that does not look like a file object rejects the whole body.
func ParseEntries(body string) ([]Entry, error) {
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrShape)
	}
	doc := gjson.Parse(body)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrShape, doc.Type)
	}

	items := doc.Array()
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrShape, i)
		}

		name := item.Get("name")
		if name.Type != gjson.String {
			return nil, fmt.Errorf("%w: element %d has no string name", ErrShape, i)
		}
		size := item.Get("size")
		if size.Type != gjson.Number {
			return nil, fmt.Errorf("%w: element %d (%s) has no numeric size", ErrShape, i, name.Str)
		}
		if size.Num < 0 || size.Num != math.Trunc(size.Num) {
			return nil, fmt.Errorf("%w: element %d (%s) has invalid size %s", ErrShape, i, name.Str, size.Raw)
		}
		downloadURL, ok := optionalString(item.Get("download_url"))
		if !ok {
			return nil, fmt.Errorf("%w: element %d (%s) has a malformed download_url", ErrShape, i, name.Str)
		}
		htmlURL, ok := optionalString(item.Get("html_url"))
		if !ok {
			return nil, fmt.Errorf("%w: element %d (%s) has a malformed html_url", ErrShape, i, name.Str)
		}

		entries = append(entries, Entry{
			Name:        name.Str,
			Type:        item.Get("type").String(),
			DownloadURL: downloadURL,
			HTMLURL:     htmlURL,
			Size:        size.Int(),
		})
	}
	return entries, nil
}

// optionalString accepts a string, null or a missing field.
func optionalString(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, true
	case gjson.Null:
		return "", true
	default:
		return "", false
	}
}
