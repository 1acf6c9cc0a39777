package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/medishare/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// serviceError maps a service error onto an HTTP error.
func serviceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, clientMessage(err, services.ErrValidation))
	case errors.Is(err, services.ErrDuplicateRequest):
		return echo.NewHTTPError(http.StatusBadRequest, "Medicine is already requested")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, clientMessage(err, services.ErrNotFound))
	case errors.Is(err, services.ErrEmailExists):
		return echo.NewHTTPError(http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrAuth):
		return echo.NewHTTPError(http.StatusUnauthorized, clientMessage(err, services.ErrAuth))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}

// clientMessage strips the sentinel prefix from a wrapped error, e.g.
// "not found: medicine X" becomes "medicine X not found".
func clientMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if !strings.HasPrefix(msg, prefix) {
		return msg
	}
	detail := strings.TrimPrefix(msg, prefix)
	if sentinel == services.ErrNotFound {
		return detail + " not found"
	}
	return detail
}

// HTTPErrorHandler renders every error as {"error": message}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = serviceError(err)
	}

	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}
	if he.Code >= http.StatusInternalServerError {
		cause := he.Internal
		if cause == nil {
			cause = err
		}
		logrus.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}).WithError(cause).Error("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, ErrorResponse{Error: msg})
	}
	if err != nil {
		logrus.WithError(err).Error("failed to write error response")
	}
}
