package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s := session.New()
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.True(t, s.IsEmpty())
	assert.NotEqual(t, s.ID, session.New().ID)
}

func TestSession_SetCookie(t *testing.T) {
	t.Parallel()

	t.Run("replaces cookie with same identity", func(t *testing.T) {
		t.Parallel()
		var s session.Session

		s.SetCookie(session.Cookie{Name: "sid", Value: "1", Domain: "example.com", Path: "/"})
		s.SetCookie(session.Cookie{Name: "sid", Value: "2", Domain: "example.com", Path: "/"})

		cookies := s.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "2", cookies[0].Value)
	})

	t.Run("keeps cookies with different domain or path", func(t *testing.T) {
		t.Parallel()
		var s session.Session

		s.SetCookie(session.Cookie{Name: "sid", Value: "a", Domain: "example.com", Path: "/"})
		s.SetCookie(session.Cookie{Name: "sid", Value: "b", Domain: "api.example.com", Path: "/"})
		s.SetCookie(session.Cookie{Name: "sid", Value: "c", Domain: "example.com", Path: "/rss"})

		assert.Len(t, s.Cookies(), 3)
		c, ok := s.Cookie("sid")
		require.True(t, ok)
		assert.Equal(t, "a", c.Value)
	})

	t.Run("ignores nameless cookies", func(t *testing.T) {
		t.Parallel()
		var s session.Session

		s.SetCookie(session.Cookie{Value: "orphan"})
		assert.True(t, s.IsEmpty())
		_, ok := s.Cookie("")
		assert.False(t, ok)
	})
}

func TestSession_Headers(t *testing.T) {
	t.Parallel()
	var s session.Session

	s.SetHeader("user-agent", "first")
	s.SetHeader("User-Agent", "second")
	s.SetHeader("", "ignored")

	assert.Equal(t, "second", s.Header("USER-AGENT"))
	assert.Equal(t, map[string]string{"User-Agent": "second"}, s.Headers())
	assert.Equal(t, "", s.Header("Accept"))
}

func TestSession_HeadersWithNonTokenNames(t *testing.T) {
	t.Parallel()
	var s session.Session

	s.SetHeader("x custom", "a")
	s.SetHeader("X CUSTOM", "b")

	assert.Equal(t, "b", s.Header("X Custom"))
	assert.Equal(t, map[string]string{"x custom": "b"}, s.Headers())
}

func TestSession_CopiesDoNotShareState(t *testing.T) {
	t.Parallel()

	s := session.New()
	s.SetCookie(session.Cookie{Name: "sid", Value: "1"})
	s.SetHeader("Accept", "text/xml")

	cookies := s.Cookies()
	cookies[0].Value = "tampered"
	headers := s.Headers()
	headers["Accept"] = "tampered"

	clone := s.Clone()
	clone.SetCookie(session.Cookie{Name: "sid", Value: "2"})
	clone.SetHeader("Accept", "application/json")

	c, _ := s.Cookie("sid")
	assert.Equal(t, "1", c.Value)
	assert.Equal(t, "text/xml", s.Header("Accept"))
	assert.Equal(t, s.ID, clone.ID)
	assert.Equal(t, "application/json", clone.Header("accept"))
}
