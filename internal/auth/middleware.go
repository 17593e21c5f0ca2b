package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

const (
	tokenContextKey     = "session_token"
	sessionContextKey   = "session"
	principalContextKey = "principal"
)

// CookieOptions controls attributes of the session cookie.
type CookieOptions struct {
	Secure bool
}

// Sessions returns a middleware that resolves the session referenced by the
// session cookie, exposes it together with the request's Principal, and
// persists it before the response is written if the handler changed it.
// A missing, forged or expired cookie starts a new anonymous session.
func Sessions(store SessionStore, tokens *JWTService, opts CookieOptions) echo.MiddlewareFunc {
	parseCookie := echojwt.WithConfig(echojwt.Config{
		SigningKey:  tokens.secret,
		TokenLookup: "cookie:" + CookieName,
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parseCookie(func(c echo.Context) error {
			ctx := c.Request().Context()

			var sess *Session
			if id := sessionIDFromToken(c); id != "" {
				loaded, err := store.Load(ctx, id)
				if err != nil {
					c.Logger().Errorf("load session: %v", err)
				}
				sess = loaded
			}
			if sess == nil {
				sess = NewSession()
			}

			c.Set(sessionContextKey, sess)
			c.Set(principalContextKey, PrincipalOf(sess))

			c.Response().Before(func() {
				if !sess.Modified() {
					return
				}
				if err := store.Save(ctx, sess); err != nil {
					c.Logger().Errorf("save session: %v", err)
					return
				}
				if !sess.Fresh() {
					return
				}
				token, err := tokens.GenerateSessionToken(sess.ID)
				if err != nil {
					c.Logger().Errorf("sign session cookie: %v", err)
					return
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(tokens.TTL().Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			})

			return next(c)
		})
	}
}

// RequireLogin redirects requests without an authenticated principal to
// loginPath, leaving a notice for the login page.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c).Authenticated {
				return next(c)
			}
			SessionFrom(c).Flash(FlashInfo, "You need to login first.")
			return c.Redirect(http.StatusFound, loginPath)
		}
	}
}

// SessionFrom returns the request's session. Outside the Sessions middleware
// it returns a detached session that is never persisted.
func SessionFrom(c echo.Context) *Session {
	if sess, ok := c.Get(sessionContextKey).(*Session); ok {
		return sess
	}
	return &Session{}
}

// PrincipalFrom returns the principal captured at request entry.
func PrincipalFrom(c echo.Context) Principal {
	if p, ok := c.Get(principalContextKey).(Principal); ok {
		return p
	}
	return Anonymous
}

func sessionIDFromToken(c echo.Context) string {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return ""
	}
	return claims.ID
}
