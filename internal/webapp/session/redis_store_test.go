package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+srv.Addr(), "", "poemhub_session", time.Hour, false)
	require.NoError(t, err)
	return store, srv
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisTestStore(t)

	w := httptest.NewRecorder()
	saved := &Session{SID: "session-x", IsAdmin: true, Username: "poet"}
	assert.NoError(t, store.Save(w, httptest.NewRequest("POST", "/login", nil), saved))

	loaded := store.Load(requestWithCookies(t, w))

	assert.Equal(t, "session-x", loaded.SID)
	assert.True(t, loaded.IsAdmin)
	assert.Equal(t, "poet", loaded.Username)
}

func TestRedisStore_SaveRotatesKey(t *testing.T) {
	store, srv := newRedisTestStore(t)

	// a cookie value planted in the browser before login
	planted := "known-to-attacker"
	req := httptest.NewRequest("POST", "/login", nil)
	req.AddCookie(&http.Cookie{Name: "poemhub_session", Value: planted})

	w := httptest.NewRecorder()
	assert.NoError(t, store.Save(w, req, &Session{SID: "session-x", IsAdmin: true, Username: "poet"}))

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		// the admin state must live under a fresh server-generated key
		assert.NotEqual(t, planted, cookies[0].Value)
	}
	assert.False(t, srv.Exists("session:"+planted))

	// holding the planted value yields nothing
	replay := httptest.NewRequest("GET", "/", nil)
	replay.AddCookie(&http.Cookie{Name: "poemhub_session", Value: planted})
	assert.Equal(t, &Session{}, store.Load(replay))
}

func TestRedisStore_UnknownKeyIgnored(t *testing.T) {
	store, _ := newRedisTestStore(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "poemhub_session", Value: "never-issued"})

	assert.Equal(t, &Session{}, store.Load(req))
}

func TestRedisStore_ExpiredStateIgnored(t *testing.T) {
	store, srv := newRedisTestStore(t)

	w := httptest.NewRecorder()
	assert.NoError(t, store.Save(w, httptest.NewRequest("POST", "/", nil), &Session{SID: "session-x"}))

	srv.FastForward(2 * time.Hour)

	assert.Equal(t, &Session{}, store.Load(requestWithCookies(t, w)))
}

func TestRedisStore_ClearDeletesState(t *testing.T) {
	store, srv := newRedisTestStore(t)

	w := httptest.NewRecorder()
	assert.NoError(t, store.Save(w, httptest.NewRequest("POST", "/login", nil), &Session{SID: "session-x", IsAdmin: true}))

	issued := w.Result().Cookies()[0].Value
	require.True(t, srv.Exists("session:"+issued))

	req := requestWithCookies(t, w)
	cleared := httptest.NewRecorder()
	assert.NoError(t, store.Clear(cleared, req))

	assert.False(t, srv.Exists("session:"+issued))
	cookies := cleared.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Negative(t, cookies[0].MaxAge)
	}
}
