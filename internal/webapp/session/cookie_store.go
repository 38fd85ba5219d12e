package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the signed payload stored in the session cookie.
type sessionClaims struct {
	SID      string `json:"sid,omitempty"`
	Admin    bool   `json:"admin,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// CookieStore keeps the whole session in the cookie itself, signed with
// HS256 so client-supplied content is never trusted without verification.
type CookieStore struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewCookieStore(secret, cookieName string, ttl time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

func (s *CookieStore) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return &Session{}
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		// tampered or expired cookie degrades to a fresh anonymous session
		return &Session{}
	}

	return &Session{
		SID:      claims.SID,
		IsAdmin:  claims.Admin,
		Username: claims.Username,
	}
}

func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	now := time.Now()
	claims := &sessionClaims{
		SID:      sess.SID,
		Admin:    sess.IsAdmin,
		Username: sess.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
