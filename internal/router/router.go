package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/form"
	"taskboard/internal/handler"
	"taskboard/internal/view"
)

// Register wires routes and middleware. sessions must be the middleware
// returned by auth.Sessions.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
) error {
	validator, err := form.NewValidator()
	if err != nil {
		return err
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}
	e.Validator = validator
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper:      isInfraPath,
		RedirectCode: http.StatusPermanentRedirect,
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessions)

	// CSRF runs per route, inside the login guard, so anonymous requests to
	// guarded routes are redirected to login rather than rejected.
	var csrf []echo.MiddlewareFunc
	if cfg.CSRFEnabled {
		csrf = append(csrf, middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:csrf_token",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.CookieSecure,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}
	guarded := append([]echo.MiddlewareFunc{auth.RequireLogin(handler.LoginPath)}, csrf...)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET(handler.LoginPath, authHandler.LoginPage, csrf...)
	e.POST(handler.LoginPath, authHandler.Login, csrf...)
	e.GET("/register/", authHandler.RegisterPage, csrf...)
	e.POST("/register/", authHandler.Register, csrf...)

	// Routes that require a logged-in session. Guarded per route: a group
	// would also guard unmatched paths.
	e.GET(handler.TasksPath, taskHandler.List, guarded...)
	e.GET("/add/", taskHandler.NewTaskPage, guarded...)
	e.POST("/add/", taskHandler.Create, guarded...)
	e.GET("/complete/:id/", taskHandler.Complete, guarded...)
	e.GET("/delete/:id/", taskHandler.Delete, guarded...)
	e.GET("/logout/", authHandler.Logout, guarded...)

	return nil
}

func isInfraPath(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/healthz" || strings.HasPrefix(path, "/swagger")
}
