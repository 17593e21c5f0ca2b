package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func newTestEcho(t *testing.T) (*echo.Echo, *RedisSessionStore, *JWTService) {
	t.Helper()
	store, _ := newTestStore(t)
	tokens := NewJWTService("test-secret", time.Hour)

	e := echo.New()
	e.Use(Sessions(store, tokens, CookieOptions{}))
	e.GET("/whoami", func(c echo.Context) error {
		p := PrincipalFrom(c)
		if !p.Authenticated {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, p.Role)
	})
	e.GET("/flash", func(c echo.Context) error {
		SessionFrom(c).Flash(FlashInfo, "hi")
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/secret", func(c echo.Context) error {
		return c.String(http.StatusOK, "secret")
	}, RequireLogin("/"))
	return e, store, tokens
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSessions_UnmodifiedSessionSetsNoCookie(t *testing.T) {
	e, _, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, "anonymous", rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestSessions_ModifiedSessionIsPersistedWithCookie(t *testing.T) {
	e, store, tokens := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flash", nil))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	claims, err := tokens.ValidateToken(cookie.Value)
	require.NoError(t, err)
	sess, err := store.Load(context.Background(), claims.ID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, []Flash{{FlashInfo, "hi"}}, sess.Flashes)
}

func TestSessions_LoggedInCookieYieldsPrincipal(t *testing.T) {
	e, store, tokens := newTestEcho(t)

	sess := NewSession()
	sess.Login(9, model.RoleAdmin)
	require.NoError(t, store.Save(context.Background(), sess))
	token, err := tokens.GenerateSessionToken(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, model.RoleAdmin, rec.Body.String())
}

func TestSessions_ForgedCookieIsAnonymous(t *testing.T) {
	e, store, _ := newTestEcho(t)

	sess := NewSession()
	sess.Login(9, model.RoleAdmin)
	require.NoError(t, store.Save(context.Background(), sess))
	forged, err := NewJWTService("attacker", time.Hour).GenerateSessionToken(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireLogin_RedirectsAnonymous(t *testing.T) {
	e, store, tokens := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	claims, err := tokens.ValidateToken(cookie.Value)
	require.NoError(t, err)
	sess, err := store.Load(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.Equal(t, []Flash{{FlashInfo, "You need to login first."}}, sess.Flashes)
}

func TestRequireLogin_AllowsAuthenticated(t *testing.T) {
	e, store, tokens := newTestEcho(t)

	sess := NewSession()
	sess.Login(1, model.RoleUser)
	require.NoError(t, store.Save(context.Background(), sess))
	token, err := tokens.GenerateSessionToken(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret", rec.Body.String())
}
