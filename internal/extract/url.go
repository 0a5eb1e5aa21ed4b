package extract

import (
	"fmt"
	"net/url"
	"strings"
)

// origin reduces a site URL to scheme://host.
func origin(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host required", raw)
	}

	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}

// absolute leaves absolute URLs untouched and prefixes relative ones with
// the site origin.
func absolute(base *url.URL, raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return base.String() + "/" + strings.TrimLeft(raw, "/")
	}
	if u.IsAbs() {
		return raw
	}

	return base.ResolveReference(u).String()
}
