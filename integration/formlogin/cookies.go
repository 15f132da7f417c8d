package formlogin

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

// cookieScope identifies a cookie the way the jar scopes it.
type cookieScope struct {
	scheme string
	name   string
	domain string
	path   string
}

// cookieRecorder notes the scope of every cookie set during one login,
// redirects included. The jar stays the source of values.
type cookieRecorder struct {
	next   http.RoundTripper
	scopes []cookieScope
}

func (r *cookieRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	for _, c := range resp.Cookies() {
		r.record(req.URL, c)
	}
	return resp, nil
}

func (r *cookieRecorder) record(u *url.URL, c *http.Cookie) {
	s := cookieScope{
		scheme: u.Scheme,
		name:   c.Name,
		domain: strings.TrimPrefix(c.Domain, "."),
		path:   c.Path,
	}
	if s.domain == "" {
		s.domain = u.Hostname()
	}
	if !strings.HasPrefix(s.path, "/") {
		s.path = defaultPath(u.Path)
	}
	if !slices.Contains(r.scopes, s) {
		r.scopes = append(r.scopes, s)
	}
}

// cookies returns the recorded cookies still held by jar, with the domain and
// path the site gave them. Cookies the site deleted or the jar refused are skipped.
func (r *cookieRecorder) cookies(jar http.CookieJar) []session.Cookie {
	out := make([]session.Cookie, 0, len(r.scopes))
	for _, s := range r.scopes {
		// The jar lists the longest matching path first.
		for _, c := range jar.Cookies(&url.URL{Scheme: s.scheme, Host: s.domain, Path: s.path}) {
			if c.Name == s.name {
				out = append(out, session.Cookie{Name: c.Name, Value: c.Value, Domain: s.domain, Path: s.path})
				break
			}
		}
	}
	return out
}

// defaultPath is the path a cookie without a Path attribute is scoped to:
// the request path up to, but excluding, its last slash.
func defaultPath(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 || p[0] != '/' {
		return "/"
	}
	return p[:i]
}
