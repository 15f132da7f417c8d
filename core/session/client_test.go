package session_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

func TestSession_Client(t *testing.T) {
	t.Parallel()

	type seen struct {
		cookie string
		ua     string
		accept string
	}
	got := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := r.Cookie("sid")
		var value string
		if c != nil {
			value = c.Value
		}
		got <- seen{cookie: value, ua: r.Header.Get("User-Agent"), accept: r.Header.Get("Accept")}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	s := session.New()
	s.SetCookie(session.Cookie{Name: "sid", Value: "secret", Path: "/"})
	s.SetCookie(session.Cookie{Name: "other", Value: "x", Domain: "elsewhere.test", Path: "/"})
	s.SetHeader("User-Agent", "keeper/1.0")
	s.SetHeader("Accept", "text/html")

	client, err := s.Client(base)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/feed", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/rss+xml")

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	r := <-got
	assert.Equal(t, "secret", r.cookie)
	assert.Equal(t, "keeper/1.0", r.ua)
	assert.Equal(t, "application/rss+xml", r.accept)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

func TestSession_ClientRequiresHost(t *testing.T) {
	t.Parallel()

	_, err := session.New().Client(nil)
	assert.ErrorIs(t, err, session.ErrInvalidBaseURL)

	_, err = session.New().Client(&url.URL{Path: "/only/path"})
	assert.ErrorIs(t, err, session.ErrInvalidBaseURL)
}
