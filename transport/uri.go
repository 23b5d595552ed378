package transport

import (
	"errors"
	"net/url"
	"strings"
)

var errNotAbsolute = errors.New("base URL is not absolute")

// buildURL composes the absolute request URL: base URL + prefix + optional
// version segment + sub-path. Sub-paths are taken as supplied — segments a
// caller already escaped are not re-encoded. Query parameters are merged in
// later, at dispatch time.
func (c *Client) buildURL(req *Request) (*url.URL, error) {
	prefix := req.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var b strings.Builder
	b.WriteString(strings.Trim(prefix, "/"))
	b.WriteString("/")
	if !req.Unversioned && c.cfg.APIVersion != "" {
		b.WriteString("v")
		b.WriteString(c.cfg.APIVersion)
		b.WriteString("/")
	}
	b.WriteString(strings.TrimLeft(req.SubPath, "/"))

	ref, err := url.Parse(b.String())
	if err != nil {
		return nil, &MalformedURIError{Value: b.String(), Err: err}
	}

	return c.base.ResolveReference(ref), nil
}

// normalizeBase parses the configured base URL and guarantees a trailing
// slash so relative resolution appends instead of replacing the last path
// segment.
func normalizeBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &MalformedURIError{Value: raw, Err: err}
	}
	if !u.IsAbs() {
		return nil, &MalformedURIError{Value: raw, Err: errNotAbsolute}
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
