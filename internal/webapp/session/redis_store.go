package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session state server-side; the cookie carries only an
// opaque random key. Used when REDIS_URL is configured.
type RedisStore struct {
	client     *redis.Client
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewRedisStore(redisURL, password, cookieName string, ttl time.Duration, secure bool) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:     rdb,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}, nil
}

func sessionKey(key string) string {
	return "session:" + key
}

func (s *RedisStore) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return &Session{}
	}

	data, err := s.client.Get(r.Context(), sessionKey(cookie.Value)).Result()
	if err != nil {
		// expired or unknown key degrades to a fresh anonymous session
		return &Session{}
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return &Session{}
	}
	return &sess
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	// The incoming cookie value is never reused as the storage key: a key
	// planted in the victim's browser before login would otherwise address
	// the authenticated session (session fixation). Every save stores the
	// state under a fresh server-generated key and drops the old one.
	key := uuid.New().String()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(r.Context(), sessionKey(key), data, s.ttl).Err(); err != nil {
		return err
	}
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		if err := s.client.Del(r.Context(), sessionKey(cookie.Value)).Err(); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		if err := s.client.Del(r.Context(), sessionKey(cookie.Value)).Err(); err != nil {
			return err
		}
	}

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
