package session

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cookie is one upstream cookie. Name, Domain and Path identify it within a session.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
}

func (c Cookie) sameIdentity(o Cookie) bool {
	return c.Name == o.Name && c.Domain == o.Domain && c.Path == o.Path
}

// Session is an authenticated identity on the upstream site: the cookies and
// headers to send with replayed requests.
// The zero value is an empty session without an ID.
type Session struct {
	// ID identifies the login that produced the session.
	ID uuid.UUID

	// CreatedAt is the time of that login.
	CreatedAt time.Time

	cookies []Cookie
	headers map[string]string
}

// New creates an empty session with a fresh ID.
func New() Session {
	return Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// SetCookie adds c, replacing a cookie with the same name, domain and path.
// Cookies without a name are ignored.
func (s *Session) SetCookie(c Cookie) {
	if c.Name == "" {
		return
	}
	for i := range s.cookies {
		if s.cookies[i].sameIdentity(c) {
			s.cookies[i] = c
			return
		}
	}
	s.cookies = append(s.cookies, c)
}

// Cookie returns the first cookie called name.
func (s Session) Cookie(name string) (Cookie, bool) {
	for _, c := range s.cookies {
		if c.Name == name {
			return c, true
		}
	}
	return Cookie{}, false
}

// Cookies returns a copy of the session cookies in insertion order.
func (s Session) Cookies() []Cookie {
	return slices.Clone(s.cookies)
}

// SetHeader sets a header value. Names are case-insensitive; the last write wins.
func (s *Session) SetHeader(name, value string) {
	if name == "" {
		return
	}
	if s.headers == nil {
		s.headers = make(map[string]string)
	}
	s.headers[headerKey(name)] = value
}

// Header returns the value of the named header, or "" if it is not set.
func (s Session) Header(name string) string {
	return s.headers[headerKey(name)]
}

// headerKey folds name to its canonical form. CanonicalHeaderKey leaves names
// with non-token characters untouched, so those are lowercased instead.
func headerKey(name string) string {
	lower := http.CanonicalHeaderKey(strings.ToLower(name))
	if lower != http.CanonicalHeaderKey(strings.ToUpper(name)) {
		return strings.ToLower(name)
	}
	return lower
}

// Headers returns a copy of the session headers keyed by canonical name.
func (s Session) Headers() map[string]string {
	out := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the session carries neither cookies nor headers.
func (s Session) IsEmpty() bool {
	return len(s.cookies) == 0 && len(s.headers) == 0
}

// Clone returns a deep copy that shares no state with s.
func (s Session) Clone() Session {
	c := Session{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		cookies:   slices.Clone(s.cookies),
	}
	if s.headers != nil {
		c.headers = s.Headers()
	}
	return c
}
