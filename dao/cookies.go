// dao/cookies.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/db"
	logger "github.com/pcbinspect/client/logging"
)

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PersistentJar is a cookie jar for one backend whose cookies survive between
// CLI runs under db.KeySessionCookies.
type PersistentJar struct {
	mu    sync.Mutex
	jar   *cookiejar.Jar
	base  *url.URL
	store db.Store
	last  string
}

func NewPersistentJar(ctx context.Context, base *url.URL, store db.Store) (*PersistentJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	p := &PersistentJar{jar: jar, base: base, store: store}

	raw, ok, err := store.Get(ctx, db.KeySessionCookies)
	if err != nil {
		logger.Warn("Ignoring unreadable session cookies", zap.Error(err))
		return p, nil
	}
	if !ok {
		return p, nil
	}

	var stored []storedCookie
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("Ignoring malformed session cookies", zap.Error(err))
		return p, nil
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value, Path: "/"})
	}
	jar.SetCookies(p.rootURL(), cookies)
	p.last = raw
	return p, nil
}

func (p *PersistentJar) rootURL() *url.URL {
	return &url.URL{Scheme: p.base.Scheme, Host: p.base.Host, Path: "/"}
}

func (p *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jar.SetCookies(u, cookies)
}

func (p *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jar.Cookies(u)
}

// Persist writes the backend's cookies to the store when they changed.
func (p *PersistentJar) Persist(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cookies := p.jar.Cookies(p.base)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	if string(raw) == p.last {
		return nil
	}

	if len(stored) == 0 {
		err = p.store.Delete(ctx, db.KeySessionCookies)
	} else {
		err = p.store.Set(ctx, db.KeySessionCookies, string(raw))
	}
	if err != nil {
		return fmt.Errorf("failed to save cookies: %w", err)
	}
	p.last = string(raw)
	return nil
}

// Reset forgets every cookie, in memory and in the store.
func (p *PersistentJar) Reset(ctx context.Context) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.jar = jar
	p.last = ""
	return p.store.Delete(ctx, db.KeySessionCookies)
}
