package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/Areeb006/FAJR/internal/storage"
)

// storedCookie is the persisted form of one session cookie.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session is a cookie jar whose cookies for the API host survive between
// runs, persisted under storage.KeySession.
type Session struct {
	mu    sync.Mutex
	store storage.Store
	jar   *cookiejar.Jar
	base  *url.URL
}

// NewSession creates a jar for baseURL and restores any persisted cookies.
// A malformed persisted session is ignored.
func NewSession(ctx context.Context, store storage.Store, baseURL string) (*Session, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	s := &Session{store: store, jar: jar, base: base}

	var stored []storedCookie
	ok, err := storage.GetJSON(ctx, store, storage.KeySession, &stored)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	case !ok:
		return s, nil
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	jar.SetCookies(base, cookies)
	return s, nil
}

// Jar is installed on the http.Client that carries API requests.
func (s *Session) Jar() http.CookieJar { return s.jar }

// Save persists the current cookies for the API host.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies := s.jar.Cookies(s.base)
	if len(cookies) == 0 {
		return s.store.Remove(ctx, storage.KeySession)
	}
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	return storage.SetJSON(ctx, s.store, storage.KeySession, stored)
}

// Clear expires every cookie for the API host and removes the persisted
// session.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*http.Cookie
	for _, c := range s.jar.Cookies(s.base) {
		expired = append(expired, &http.Cookie{Name: c.Name, Value: "", Path: "/", MaxAge: -1})
	}
	s.jar.SetCookies(s.base, expired)
	return s.store.Remove(ctx, storage.KeySession)
}

// Active reports whether any cookie is held for the API host.
func (s *Session) Active() bool {
	return len(s.jar.Cookies(s.base)) > 0
}
