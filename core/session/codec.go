package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Codec converts sessions to and from records.
// Decode must return the zero Session whenever it fails.
type Codec interface {
	Encode(s Session) (Record, error)
	Decode(r Record) (Session, error)
}

// Ensure JSONCodec implements Codec.
var _ Codec = JSONCodec{}

// JSONCodec stores cookies as a JSON array and headers as a JSON object.
type JSONCodec struct{}

type cookieJSON struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain,omitempty"`
	Path   string `json:"path,omitempty"`
}

// Encode serializes the session. It fails with ErrEncode and ErrInvalidText
// for text that is not valid UTF-8, which JSON cannot carry unchanged.
func (JSONCodec) Encode(s Session) (Record, error) {
	cookies := make([]cookieJSON, 0, len(s.cookies))
	for _, c := range s.cookies {
		for _, v := range []string{c.Name, c.Value, c.Domain, c.Path} {
			if !utf8.ValidString(v) {
				return Record{}, errors.Join(ErrEncode, fmt.Errorf("%w: cookie %q", ErrInvalidText, c.Name))
			}
		}
		cookies = append(cookies, cookieJSON(c))
	}
	for k, v := range s.headers {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return Record{}, errors.Join(ErrEncode, fmt.Errorf("%w: header %q", ErrInvalidText, k))
		}
	}

	cb, err := json.Marshal(cookies)
	if err != nil {
		return Record{}, err
	}
	hb, err := json.Marshal(s.Headers())
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Cookies:   cb,
		Headers:   hb,
	}, nil
}

// Decode rebuilds a session. Incomplete records and malformed blobs fail with ErrDecode.
func (JSONCodec) Decode(r Record) (Session, error) {
	if !r.IsComplete() {
		return Session{}, errors.Join(ErrDecode, ErrIncompleteRecord)
	}

	var cookies []cookieJSON
	if err := json.Unmarshal(r.Cookies, &cookies); err != nil {
		return Session{}, errors.Join(ErrDecode, err)
	}
	var headers map[string]string
	if err := json.Unmarshal(r.Headers, &headers); err != nil {
		return Session{}, errors.Join(ErrDecode, err)
	}
	if cookies == nil || headers == nil {
		return Session{}, errors.Join(ErrDecode, ErrIncompleteRecord)
	}

	s := Session{ID: r.ID, CreatedAt: r.CreatedAt}
	for _, c := range cookies {
		if c.Name == "" {
			return Session{}, errors.Join(ErrDecode, ErrInvalidCookie)
		}
		s.SetCookie(Cookie(c))
	}
	for _, k := range slices.Sorted(maps.Keys(headers)) {
		if _, dup := s.headers[headerKey(k)]; dup {
			return Session{}, errors.Join(ErrDecode, fmt.Errorf("%w: %q", ErrDuplicateHeader, k))
		}
		s.SetHeader(k, headers[k])
	}
	return s, nil
}
