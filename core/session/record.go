package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const recordVersion = 1

// Record is the stored form of a Session. Cookies and Headers are opaque blobs
// produced by a Codec; a record missing either blob is incomplete.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Cookies   []byte
	Headers   []byte
}

// IsComplete reports whether both blobs are present.
func (r Record) IsComplete() bool {
	return len(r.Cookies) > 0 && len(r.Headers) > 0
}

type recordFrame struct {
	Version   int       `json:"v"`
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Cookies   []byte    `json:"cookies,omitempty"`
	Headers   []byte    `json:"headers,omitempty"`
}

// MarshalRecord frames a record into the byte payload kept in a Store.
func MarshalRecord(r Record) ([]byte, error) {
	return json.Marshal(recordFrame{
		Version:   recordVersion,
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Cookies:   r.Cookies,
		Headers:   r.Headers,
	})
}

// UnmarshalRecord parses a stored payload. It fails with ErrDecode for
// unreadable payloads and unknown format versions. A payload missing a blob
// parses into an incomplete Record.
func UnmarshalRecord(data []byte) (Record, error) {
	var f recordFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return Record{}, errors.Join(ErrDecode, err)
	}
	if f.Version != recordVersion {
		return Record{}, errors.Join(ErrDecode, ErrUnknownVersion)
	}
	return Record{
		ID:        f.ID,
		CreatedAt: f.CreatedAt,
		Cookies:   f.Cookies,
		Headers:   f.Headers,
	}, nil
}
