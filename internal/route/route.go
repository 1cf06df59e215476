// Package route builds the web addresses of record detail pages.
package route

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoBaseURL is returned when the router has no base URL.
var ErrNoBaseURL = errors.New("detail base url is not configured")

// Router builds detail URLs below BaseURL.
type Router struct {
	BaseURL string
}

// DetailURL returns <base>/<kind>/<id> with each segment escaped.
func (r Router) DetailURL(kind, id string) (string, error) {
	base := strings.TrimRight(r.BaseURL, "/")
	if base == "" {
		return "", ErrNoBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return "", err
	}
	return base + "/" + url.PathEscape(kind) + "/" + url.PathEscape(id), nil
}
