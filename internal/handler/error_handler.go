package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/view"
)

// HTTPErrorHandler renders errors with the error page. Server errors are
// logged and their details are not shown.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusOf(err)
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	page := view.NewPage(c, http.StatusText(code))
	page.Status = code
	page.Message = msg
	if rerr := c.Render(code, view.ErrorPage, page); rerr != nil {
		c.Logger().Errorf("render error page: %v", rerr)
		_ = c.String(code, msg)
	}
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code)
		}
		return he.Code, fmt.Sprint(he.Message)
	}
	mapped := apperrors.MapErrorToHTTP(err)
	return mapped.StatusCode, mapped.Message
}
