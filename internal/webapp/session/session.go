package session

import (
	"net/http"

	"github.com/google/uuid"
)

// Session is the per-browser state carried between requests. It is an
// explicit variant: Anonymous while IsAdmin is false, Authenticated once a
// login succeeds. SID stays empty until the visitor's first reaction.
type Session struct {
	SID      string `json:"sid,omitempty"`
	IsAdmin  bool   `json:"admin,omitempty"`
	Username string `json:"username,omitempty"`
}

// EnsureSID returns the session's anonymous id, assigning a fresh one on
// first use. Idempotent: an existing id is returned unchanged. The second
// return reports whether a new id was assigned, so the caller knows the
// session must round-trip on the response.
func (s *Session) EnsureSID() (string, bool) {
	if s.SID != "" {
		return s.SID, false
	}
	s.SID = uuid.New().String()
	return s.SID, true
}

// Authenticate switches the session to its admin variant. The anonymous id,
// if any, is kept so the visitor's own reactions still render as theirs.
func (s *Session) Authenticate(username string) {
	s.IsAdmin = true
	s.Username = username
}

// Store persists sessions across requests. Both implementations are
// cookie-backed: the cookie either carries the signed state itself
// (CookieStore) or an opaque key into Redis (RedisStore). A missing or
// unverifiable cookie always loads as a fresh anonymous session, never an
// error the caller has to branch on.
type Store interface {
	Load(r *http.Request) *Session
	Save(w http.ResponseWriter, r *http.Request, sess *Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}
