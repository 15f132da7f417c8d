package session

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// Client returns an HTTP client that replays the session against the upstream site.
// Its cookie jar holds the session cookies; cookies without a domain are bound
// to base's host. Session headers are added to every request that does not set
// them itself.
func (s Session) Client(base *url.URL) (*http.Client, error) {
	if base == nil || base.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	for _, c := range s.cookies {
		target := base
		if c.Domain != "" && !domainMatches(base.Hostname(), c.Domain) {
			target = &url.URL{Scheme: base.Scheme, Host: strings.TrimPrefix(c.Domain, ".")}
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		jar.SetCookies(target, []*http.Cookie{{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   path,
		}})
	}

	return &http.Client{
		Jar: jar,
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			headers: s.Headers(),
		},
	}, nil
}

func domainMatches(host, domain string) bool {
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))
	host = strings.ToLower(host)
	return host == domain || strings.HasSuffix(host, "."+domain)
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(r)
}
