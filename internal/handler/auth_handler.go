package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/form"
	"taskboard/internal/service"
	"taskboard/internal/view"
)

// Paths the handlers redirect to.
const (
	LoginPath = "/"
	TasksPath = "/tasks/"
)

const (
	msgInvalidLogin   = "Invalid username or password."
	msgLoggedIn       = "You are logged in. Go Crazy."
	msgRegistered     = "Thanks for registering. Please login."
	msgAlreadyExists  = "Oh no! That username and/or email already exist. Please try again."
	msgLoggedOut      = "You are logged out. Bye. :("
	msgInvalidFormReq = "invalid form data"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginPage godoc
// @Summary Show the login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "login page"
// @Router / [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, form.LoginForm{}, nil, "")
}

// Login godoc
// @Summary Log in with name and password
// @Description On success the session is regenerated and the browser is sent to the task list.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "User name"
// @Param password formData string true "Password"
// @Success 302 {string} string "redirect to /tasks/"
// @Success 200 {string} string "login page with errors"
// @Failure 400 {string} string "malformed form"
// @Router / [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var f form.LoginForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidFormReq)
	}
	if err := c.Validate(&f); err != nil {
		fieldErrs, ok := form.AsErrors(err)
		if !ok {
			return err
		}
		return h.renderLogin(c, f, fieldErrs, "")
	}

	user, err := h.authService.Login(c.Request().Context(), f.Name, f.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		return h.renderLogin(c, f, nil, msgInvalidLogin)
	}
	if err != nil {
		return err
	}

	sess := auth.SessionFrom(c)
	sess.Login(user.ID, user.Role)
	sess.Flash(auth.FlashSuccess, msgLoggedIn)
	return c.Redirect(http.StatusFound, TasksPath)
}

// RegisterPage godoc
// @Summary Show the registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "registration page"
// @Router /register/ [get]
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.renderRegister(c, form.RegisterForm{}, nil)
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user with role "user". Does not log the user in.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "User name (3-25 chars)"
// @Param email formData string true "Email (max 40 chars)"
// @Param password formData string true "Password (3-40 chars)"
// @Param confirm formData string false "Password confirmation"
// @Success 302 {string} string "redirect to /"
// @Success 200 {string} string "registration page with errors"
// @Failure 400 {string} string "malformed form"
// @Router /register/ [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var f form.RegisterForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidFormReq)
	}
	if err := c.Validate(&f); err != nil {
		fieldErrs, ok := form.AsErrors(err)
		if !ok {
			return err
		}
		return h.renderRegister(c, f, fieldErrs)
	}

	_, err := h.authService.Register(c.Request().Context(), f.Name, f.Email, f.Password)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		auth.SessionFrom(c).Flash(auth.FlashError, msgAlreadyExists)
		return h.renderRegister(c, f, nil)
	}
	if err != nil {
		return err
	}

	auth.SessionFrom(c).Flash(auth.FlashSuccess, msgRegistered)
	return c.Redirect(http.StatusFound, LoginPath)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 302 {string} string "redirect to /"
// @Router /logout/ [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := auth.SessionFrom(c)
	sess.Logout()
	sess.Flash(auth.FlashInfo, msgLoggedOut)
	return c.Redirect(http.StatusFound, LoginPath)
}

func (h *AuthHandler) renderLogin(c echo.Context, f form.LoginForm, fieldErrs form.Errors, msg string) error {
	f.Password = ""
	page := view.NewPage(c, "Login")
	page.Form = f
	page.Error = msg
	if fieldErrs != nil {
		page.Errors = fieldErrs
	}
	return c.Render(http.StatusOK, view.LoginPage, page)
}

func (h *AuthHandler) renderRegister(c echo.Context, f form.RegisterForm, fieldErrs form.Errors) error {
	f.ClearSecrets()
	page := view.NewPage(c, "Register")
	page.Form = f
	if fieldErrs != nil {
		page.Errors = fieldErrs
	}
	return c.Render(http.StatusOK, view.RegisterPage, page)
}
